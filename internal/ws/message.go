package ws

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type EventType string

const (
	// client -> server
	EventHeartbeat        EventType = "heartbeat"
	EventSecurityEvent    EventType = "security:event"
	EventPlaybackRequest  EventType = "playback:request"
	EventPlaybackProgress EventType = "playback:progress"
	EventKillSession      EventType = "kill_session"

	// server -> client
	EventHeartbeatAck     EventType = "heartbeat:ack"
	EventSessionKilled    EventType = "session:killed"
	EventAnotherLogin     EventType = "session:another_login"
	EventPlaybackResponse EventType = "playback:response"
)

type IncomingMessage struct {
	Type    EventType       `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type OutgoingMessage struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload,omitempty"`
}

type HeartbeatPayload struct {
	Timestamp  int64 `json:"timestamp"`
	TabVisible bool  `json:"tabVisible"`
}

type SecurityEventPayload struct {
	Type    string     `json:"type"`
	VideoID *uuid.UUID `json:"videoId,omitempty"`
	Details string     `json:"details,omitempty"`
}

type PlaybackRequestPayload struct {
	VideoID uuid.UUID `json:"videoId"`
}

type PlaybackProgressPayload struct {
	VideoID  uuid.UUID `json:"videoId"`
	Position float64   `json:"position"`
	Duration float64   `json:"duration"`
}

type KillSessionPayload struct {
	TargetSessionID uuid.UUID `json:"targetSessionId"`
	Reason          string    `json:"reason"`
}

type HeartbeatAckPayload struct {
	ServerTime time.Time `json:"serverTime"`
}

type SessionKilledPayload struct {
	Reason string `json:"reason"`
}

type PlaybackResponsePayload struct {
	VideoID uuid.UUID `json:"videoId"`
	Allowed bool      `json:"allowed"`
}
