package config

import "time"

type ctxKey string

const (
	UidKey  ctxKey = "uid"
	SidKey  ctxKey = "sid"
	RoleKey ctxKey = "role"
)

const (
	DefaultPage  = 1
	DefaultSize  = 40
	MinCacheTime = time.Minute * 5
)

const (
	// SessionDuration is the absolute session lifetime, fixed at
	// creation. It does not slide on heartbeats.
	SessionDuration = time.Hour * 24 * 7

	// VerificationCodeTTL bounds the lifetime of a device code.
	VerificationCodeTTL = time.Minute * 15

	// TempTokenDuration bounds the verification-scope token. Kept in
	// step with the code TTL so neither outlives the other.
	TempTokenDuration = time.Minute * 15
)

const DeviceHashHeader = "X-Device-Hash"
