package models

import (
	"time"

	"github.com/google/uuid"
)

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// SecurityEvent is an append-only audit row. Rows are never mutated
// or deleted by this service.
type SecurityEvent struct {
	ID        uint64     `db:"id"         json:"id"`
	UserID    uuid.UUID  `db:"user_id"    json:"userId"`
	SessionID *uuid.UUID `db:"session_id" json:"sessionId,omitempty"`
	VideoID   *uuid.UUID `db:"video_id"   json:"videoId,omitempty"`
	EventType string     `db:"event_type" json:"eventType"`
	Details   string     `db:"details"    json:"details"`
	Severity  Severity   `db:"severity"   json:"severity"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
}
