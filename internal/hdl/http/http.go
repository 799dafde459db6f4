package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "github.com/JMURv/courseguard/api/rest/v1"
	"github.com/JMURv/courseguard/internal/auth/jwt"
	"github.com/JMURv/courseguard/internal/ctrl"
	mid "github.com/JMURv/courseguard/internal/hdl/http/middleware"
	"github.com/JMURv/courseguard/internal/hdl/http/utils"
	"github.com/JMURv/courseguard/internal/ws"
	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	router *chi.Mux
	au     jwt.Port
	srv    *http.Server
	ctrl   ctrl.AppCtrl
	hub    *ws.Hub
}

func New(au jwt.Port, ctrl ctrl.AppCtrl, hub *ws.Hub) *Handler {
	r := chi.NewRouter()
	return &Handler{
		router: r,
		au:     au,
		ctrl:   ctrl,
		hub:    hub,
	}
}

// Router wires the middleware chain and every route group onto the
// mux. Called once, by Start or by a test server standing in for it.
func (h *Handler) Router() *chi.Mux {
	h.router.Use(
		mid.Logger(zap.L()),
		middleware.StripSlashes,
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		mid.Prometheus,
		mid.OT,
	)

	h.RegisterAuthRoutes()
	h.RegisterStreamRoutes()
	h.RegisterAdminRoutes()
	h.RegisterWSRoutes()

	h.router.Get("/swagger/*", httpSwagger.WrapHandler)
	h.router.Get(
		"/health", func(w http.ResponseWriter, r *http.Request) {
			utils.SuccessResponse(w, http.StatusOK, "OK")
		},
	)

	return h.router
}

func (h *Handler) Start(port int) {
	h.srv = &http.Server{
		Handler:      h.Router(),
		Addr:         fmt.Sprintf(":%v", port),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	zap.L().Info(
		"Starting HTTP server",
		zap.String("addr", h.srv.Addr),
	)

	err := h.srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		zap.L().Error("Server error", zap.Error(err))
	}
}

func (h *Handler) Close(ctx context.Context) error {
	return h.srv.Shutdown(ctx)
}
