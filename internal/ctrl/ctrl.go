package ctrl

import (
	"context"
	"io"
	"time"

	"github.com/JMURv/courseguard/internal/auth"
	"github.com/JMURv/courseguard/internal/auth/jwt"
	"github.com/google/uuid"
)

type AppRepo interface {
	userRepo
	deviceRepo
	sessionRepo
	eventRepo
}

type AppCtrl interface {
	authCtrl
	deviceCtrl
	sessionCtrl
	eventCtrl
}

type CacheService interface {
	io.Closer
	GetToStruct(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, t time.Duration, key string, val any)
	Delete(ctx context.Context, key string)
	InvalidateKeysByPattern(ctx context.Context, pattern string)
}

// SessionNotifier pushes kill notices to live connections. Wired
// after the hub is constructed; nil means no live channel.
type SessionNotifier interface {
	NotifyKilled(userID uuid.UUID, reason string)
}

type EmailService interface {
	SendVerificationCode(toEmail, code string) error
	SendCriticalAlert(userEmail, eventType, details string) error
}

type Controller struct {
	au           auth.Core
	jwt          jwt.Port
	repo         AppRepo
	cache        CacheService
	email        EmailService
	notifier     SessionNotifier
	streamSecret []byte
}

func New(
	au auth.Core,
	jwt jwt.Port,
	repo AppRepo,
	cache CacheService,
	email EmailService,
	streamSecret []byte,
) *Controller {
	return &Controller{
		au:           au,
		jwt:          jwt,
		repo:         repo,
		cache:        cache,
		email:        email,
		streamSecret: streamSecret,
	}
}

// SetNotifier breaks the construction cycle between the controller
// and the websocket hub, which needs the controller itself.
func (c *Controller) SetNotifier(n SessionNotifier) {
	c.notifier = n
}
