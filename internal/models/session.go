package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	TermReasonLogout     = "user logout"
	TermReasonSuperseded = "superseded by new login"
	TermReasonDeviceWipe = "device reset by admin"
)

// Session is a time-bounded grant of access tied to one verified
// login. At most one row per user has is_active=true; expiry is a
// predicate checked on validation, not a persisted state.
type Session struct {
	ID            uuid.UUID  `db:"id"              json:"id"`
	UserID        uuid.UUID  `db:"user_id"         json:"userId"`
	Token         string     `db:"token"           json:"-"`
	RefreshToken  string     `db:"refresh_token"   json:"-"`
	IsActive      bool       `db:"is_active"       json:"isActive"`
	SourceIP      string     `db:"source_ip"       json:"sourceIp"`
	LastHeartbeat time.Time  `db:"last_heartbeat"  json:"lastHeartbeat"`
	ExpiresAt     time.Time  `db:"expires_at"      json:"expiresAt"`
	TermReason    *string    `db:"term_reason"     json:"termReason,omitempty"`
	TerminatedAt  *time.Time `db:"terminated_at"   json:"terminatedAt,omitempty"`
	CreatedAt     time.Time  `db:"created_at"      json:"createdAt"`
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
