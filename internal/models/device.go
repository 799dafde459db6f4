package models

import (
	"time"

	"github.com/google/uuid"
)

// Device is the single trusted device of a user. A user owns at most
// one row; a login from a different fingerprint overwrites it and
// re-arms verification instead of creating a second row.
type Device struct {
	ID              uuid.UUID  `db:"id"               json:"id"`
	UserID          uuid.UUID  `db:"user_id"          json:"userId"`
	FingerprintHash string     `db:"fingerprint_hash" json:"-"`
	IsVerified      bool       `db:"is_verified"      json:"isVerified"`
	Code            *string    `db:"code"             json:"-"`
	CodeExpiresAt   *time.Time `db:"code_expires_at"  json:"-"`
	VerifiedAt      *time.Time `db:"verified_at"      json:"verifiedAt"`
	UA              string     `db:"user_agent"       json:"ua"`
	Platform        string     `db:"platform"         json:"platform"`
	Screen          string     `db:"screen"           json:"screen"`
	Timezone        string     `db:"timezone"         json:"timezone"`
	LastSeenAt      time.Time  `db:"last_seen_at"     json:"lastSeenAt"`
	CreatedAt       time.Time  `db:"created_at"       json:"createdAt"`
}
