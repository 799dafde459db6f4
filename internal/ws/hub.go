package ws

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/JMURv/courseguard/internal/ctrl"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProgressStore receives playback progress reports. Watch-progress
// bookkeeping lives outside this subsystem; nil drops the reports.
type ProgressStore interface {
	SaveProgress(ctx context.Context, uid, videoID uuid.UUID, position, duration float64) error
}

// Hub owns the process-local connection registry: one live client
// per user, last writer wins. The registry is ephemeral and rebuilt
// from nothing on restart; it is not shared across instances, so the
// another_login notice is advisory, not an invariant.
type Hub struct {
	mu       sync.RWMutex
	clients  map[uuid.UUID]*Client
	ctrl     ctrl.AppCtrl
	progress ProgressStore

	register   chan *Client
	unregister chan *Client
	done       chan struct{}
}

func NewHub(ctrl ctrl.AppCtrl, progress ProgressStore) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]*Client),
		ctrl:       ctrl,
		progress:   progress,
		register:   make(chan *Client, 64),
		unregister: make(chan *Client, 64),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		}
	}
}

func (h *Hub) shutdown() {
	h.mu.Lock()
	all := make([]*Client, 0, len(h.clients))
	for _, c := range h.clients {
		all = append(all, c)
	}
	h.clients = make(map[uuid.UUID]*Client)
	h.mu.Unlock()

	// Network I/O outside the lock.
	for _, c := range all {
		c.Close()
	}
	for _, c := range all {
		c.Wait()
	}
}

// addClient installs the client as the user's registry entry. If a
// different connection already holds the slot, it gets an advisory
// another_login push before being displaced. This does not touch the
// session row: two tabs on the same session are allowed, they just
// compete for the single registry slot.
func (h *Hub) addClient(c *Client) {
	h.mu.Lock()
	prev := h.clients[c.userID]
	h.clients[c.userID] = c
	h.mu.Unlock()

	if prev != nil && prev != c {
		h.sendToClient(prev, OutgoingMessage{Type: EventAnotherLogin})
	}
}

// removeClient drops the registry entry only if it still points at
// the disconnecting client. A stale disconnect callback must not
// remove a newer connection registered after it.
func (h *Hub) removeClient(c *Client) {
	h.mu.Lock()
	if h.clients[c.userID] == c {
		delete(h.clients, c.userID)
	}
	h.mu.Unlock()

	c.Close()
}

// NotifyKilled implements ctrl.SessionNotifier: pushes a kill notice
// to the user's live connection, if any. Best-effort, no ack.
func (h *Hub) NotifyKilled(userID uuid.UUID, reason string) {
	h.mu.RLock()
	c := h.clients[userID]
	h.mu.RUnlock()

	if c == nil {
		return
	}

	h.sendToClient(c, OutgoingMessage{
		Type:    EventSessionKilled,
		Payload: SessionKilledPayload{Reason: reason},
	})
}

// HandleMessage dispatches one incoming frame. The channel never
// sends structured errors back: a failed trust check results in a
// session:killed push or silence.
func (h *Hub) HandleMessage(ctx context.Context, c *Client, msg IncomingMessage) {
	switch msg.Type {
	case EventHeartbeat:
		h.handleHeartbeat(ctx, c, msg)
	case EventSecurityEvent:
		h.handleSecurityEvent(ctx, c, msg)
	case EventPlaybackRequest:
		h.handlePlaybackRequest(ctx, c, msg)
	case EventPlaybackProgress:
		h.handlePlaybackProgress(ctx, c, msg)
	case EventKillSession:
		h.handleKillSession(ctx, c, msg)
	default:
		zap.L().Debug(
			"ws unknown event type",
			zap.String("uid", c.userID.String()),
			zap.String("type", string(msg.Type)),
		)
	}
}

func (h *Hub) handleHeartbeat(ctx context.Context, c *Client, msg IncomingMessage) {
	var p HeartbeatPayload
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return
		}
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	s, err := h.ctrl.Heartbeat(ctx, c.sessionID)
	if err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			h.sendToClient(c, OutgoingMessage{
				Type:    EventSessionKilled,
				Payload: SessionKilledPayload{Reason: "session not found"},
			})
		}
		return
	}

	if !s.IsActive {
		reason := "terminated"
		if s.TermReason != nil {
			reason = *s.TermReason
		}

		h.sendToClient(c, OutgoingMessage{
			Type:    EventSessionKilled,
			Payload: SessionKilledPayload{Reason: reason},
		})
		return
	}

	h.sendToClient(c, OutgoingMessage{
		Type:    EventHeartbeatAck,
		Payload: HeartbeatAckPayload{ServerTime: time.Now()},
	})
}

func (h *Hub) handleSecurityEvent(ctx context.Context, c *Client, msg IncomingMessage) {
	var p SecurityEventPayload
	if err := json.Unmarshal(msg.Payload, &p); err != nil || p.Type == "" {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	sid := c.sessionID
	_, err := h.ctrl.ReportSecurityEvent(ctx, c.userID, &sid, p.VideoID, p.Type, p.Details)
	if err != nil {
		zap.L().Error(
			"ws failed to persist security event",
			zap.String("uid", c.userID.String()),
			zap.String("eventType", p.Type),
			zap.Error(err),
		)
	}
}

func (h *Hub) handlePlaybackRequest(ctx context.Context, c *Client, msg IncomingMessage) {
	var p PlaybackRequestPayload
	if err := json.Unmarshal(msg.Payload, &p); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	allowed := false
	if s, err := h.ctrl.Heartbeat(ctx, c.sessionID); err == nil {
		allowed = s.IsActive && !s.Expired(time.Now())
	}

	h.sendToClient(c, OutgoingMessage{
		Type:    EventPlaybackResponse,
		Payload: PlaybackResponsePayload{VideoID: p.VideoID, Allowed: allowed},
	})
}

func (h *Hub) handlePlaybackProgress(ctx context.Context, c *Client, msg IncomingMessage) {
	if h.progress == nil {
		return
	}

	var p PlaybackProgressPayload
	if err := json.Unmarshal(msg.Payload, &p); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := h.progress.SaveProgress(ctx, c.userID, p.VideoID, p.Position, p.Duration); err != nil {
		zap.L().Debug(
			"ws failed to save progress",
			zap.String("uid", c.userID.String()),
			zap.Error(err),
		)
	}
}

func (h *Hub) handleKillSession(ctx context.Context, c *Client, msg IncomingMessage) {
	var p KillSessionPayload
	if err := json.Unmarshal(msg.Payload, &p); err != nil || p.TargetSessionID == uuid.Nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := h.ctrl.KillSession(ctx, c.role, p.TargetSessionID, p.Reason); err != nil {
		zap.L().Info(
			"ws kill_session rejected",
			zap.String("uid", c.userID.String()),
			zap.String("target", p.TargetSessionID.String()),
			zap.Error(err),
		)
	}
}

func (h *Hub) sendToClient(c *Client, msg OutgoingMessage) {
	select {
	case c.send <- msg:
	case <-c.done:
	default:
		// Backpressure: send buffer full, drop the slow client.
		zap.L().Warn("ws send buffer full, closing slow client", zap.String("uid", c.userID.String()))
		c.Close()
	}
}

func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
		c.Close()
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}
