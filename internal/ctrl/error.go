package ctrl

import "errors"

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when a resource conflicts with an
// existing one.
var ErrAlreadyExists = errors.New("already exists")

// ErrInvalidCode is returned when the verification code mismatches.
var ErrInvalidCode = errors.New("invalid verification code")

// ErrCodeExpired is returned when the verification code is past its expiry.
var ErrCodeExpired = errors.New("verification code expired")

// ErrSessionExpired is returned when no live session backs the request.
var ErrSessionExpired = errors.New("session expired")

// ErrDeviceMismatch is returned when the presented fingerprint does not
// match the user's verified device.
var ErrDeviceMismatch = errors.New("device mismatch")

// ErrForbidden is returned on role-gated operations.
var ErrForbidden = errors.New("forbidden")
