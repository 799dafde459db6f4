package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/JMURv/courseguard/internal/auth/jwt"
	"github.com/JMURv/courseguard/internal/hdl/http/utils"
	"github.com/JMURv/courseguard/internal/ws"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Token auth makes the connection safe regardless of origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (h *Handler) RegisterWSRoutes() {
	h.router.Get("/ws", h.connectWS)
}

// connectWS upgrades an authenticated client onto the real-time
// channel. Browsers cannot set headers on websocket dials, so the
// token is also accepted as a query parameter.
func (h *Handler) connectWS(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	claims, err := h.au.ParseClaims(r.Context(), token)
	if err != nil || claims.Scope != jwt.ScopeSession ||
		claims.UID == uuid.Nil || claims.SID == uuid.Nil || claims.Role == "" {
		utils.ErrResponse(w, http.StatusUnauthorized, jwt.ErrInvalidToken)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.L().Debug("ws upgrade failed", zap.Error(err))
		return
	}

	client := ws.NewClient(h.hub, conn, claims.UID, claims.SID, claims.Role)
	h.hub.Register(client)

	ctx, cancel := context.WithCancel(context.Background())
	client.Start(ctx, cancel)
}
