package dto

import (
	md "github.com/JMURv/courseguard/internal/models"
	"github.com/google/uuid"
)

type LoginRequest struct {
	Email      string `json:"email"      validate:"required,email"`
	Password   string `json:"password"   validate:"required"`
	DeviceHash string `json:"deviceHash" validate:"required"`
}

// LoginResponse is shared by login and verify-device. When the device
// is not yet trusted only RequiresDeviceVerification and TempToken are
// set; the access fields stay empty until verification completes.
type LoginResponse struct {
	User                       *md.User  `json:"user,omitempty"`
	Token                      string    `json:"token,omitempty"`
	SessionID                  uuid.UUID `json:"sessionId,omitempty"`
	RequiresDeviceVerification bool      `json:"requiresDeviceVerification"`
	TempToken                  string    `json:"tempToken,omitempty"`
}

type VerifyDeviceRequest struct {
	Code       string      `json:"code"       validate:"required,len=6,numeric"`
	DeviceHash string      `json:"deviceHash" validate:"required"`
	DeviceInfo *DeviceInfo `json:"deviceInfo"`
}

type SessionCheckResponse struct {
	Valid bool     `json:"valid"`
	User  *md.User `json:"user,omitempty"`
}

type KillSessionRequest struct {
	Reason string `json:"reason" validate:"required"`
}
