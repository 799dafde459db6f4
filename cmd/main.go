package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JMURv/courseguard/internal/auth"
	"github.com/JMURv/courseguard/internal/auth/jwt"
	"github.com/JMURv/courseguard/internal/cache/redis"
	"github.com/JMURv/courseguard/internal/config"
	"github.com/JMURv/courseguard/internal/ctrl"
	hdl "github.com/JMURv/courseguard/internal/hdl/http"
	"github.com/JMURv/courseguard/internal/observability/metrics/prometheus"
	"github.com/JMURv/courseguard/internal/observability/tracing/jaeger"
	"github.com/JMURv/courseguard/internal/repo/db"
	"github.com/JMURv/courseguard/internal/smtp"
	"github.com/JMURv/courseguard/internal/ws"
	"go.uber.org/zap"
)

const configPath = "configs/local.env"

func mustRegisterLogger(mode string) {
	switch mode {
	case "prod":
		zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
	case "dev":
		zap.ReplaceGlobals(zap.Must(zap.NewDevelopment()))
	}
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			zap.L().Panic("panic occurred", zap.Any("error", err))
			os.Exit(1)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf := config.MustLoad(configPath)
	mustRegisterLogger(conf.Server.Mode)

	go prometheus.New(conf.Server.Port + 5).Start(ctx)
	go jaeger.Start(ctx, conf.ServiceName, conf.Jaeger)

	cache := redis.New(conf.Redis)
	repo := db.New(conf)
	email := smtp.New(conf)
	jwtCore := jwt.New(conf)

	svc := ctrl.New(
		auth.New(), jwtCore, repo, cache, email, []byte(conf.Auth.StreamSecret),
	)

	hub := ws.NewHub(svc, nil)
	svc.SetNotifier(hub)
	go hub.Run(ctx)

	h := hdl.New(jwtCore, svc, hub)
	go h.Start(conf.Server.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-c

	zap.L().Info("Shutting down gracefully...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := h.Close(shutdownCtx); err != nil {
		zap.L().Warn("Error closing handler", zap.Error(err))
	}

	if err := cache.Close(); err != nil {
		zap.L().Warn("Failed to close connection to Redis: ", zap.Error(err))
	}

	if err := repo.Close(shutdownCtx); err != nil {
		zap.L().Warn("Error closing repository", zap.Error(err))
	}

	os.Exit(0)
}
