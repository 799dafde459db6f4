package prometheus

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var reqDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of requests by operation and status code.",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"op", "status"},
)

var reqTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total requests by operation and status code.",
	},
	[]string{"op", "status"},
)

func init() {
	prometheus.MustRegister(reqDuration, reqTotal)
}

func ObserveRequest(d time.Duration, status int, op string) {
	code := strconv.Itoa(status)
	reqDuration.WithLabelValues(op, code).Observe(d.Seconds())
	reqTotal.WithLabelValues(op, code).Inc()
}

type Server struct {
	srv *http.Server
}

func New(port int) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &Server{
		srv: &http.Server{
			Addr:    fmt.Sprintf(":%v", port),
			Handler: mux,
		},
	}
}

func (s *Server) Start(ctx context.Context) {
	go func() {
		<-ctx.Done()
		if err := s.srv.Shutdown(context.Background()); err != nil {
			zap.L().Warn("failed to shutdown metrics server", zap.Error(err))
		}
	}()

	zap.L().Info("Starting metrics server", zap.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zap.L().Error("metrics server error", zap.Error(err))
	}
}
