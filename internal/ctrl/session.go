package ctrl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JMURv/courseguard/internal/config"
	"github.com/JMURv/courseguard/internal/dto"
	"github.com/JMURv/courseguard/internal/keys"
	md "github.com/JMURv/courseguard/internal/models"
	"github.com/JMURv/courseguard/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type sessionCtrl interface {
	Validate(ctx context.Context, uid, sid uuid.UUID, fingerprintHash string) (*md.User, error)
	Heartbeat(ctx context.Context, sid uuid.UUID) (*md.Session, error)
	KillSession(ctx context.Context, actorRole md.Role, sid uuid.UUID, reason string) error
	StreamKey(
		ctx context.Context,
		videoID, uid, sid uuid.UUID,
		fingerprintHash string,
	) ([]byte, error)
	ListSessions(
		ctx context.Context,
		page, size int,
		filters map[string]any,
	) (*dto.PaginatedSessionResponse, error)
}

type sessionRepo interface {
	CreateSession(
		ctx context.Context,
		userID uuid.UUID,
		token, refreshToken, sourceIP string,
		expiresAt time.Time,
	) (uuid.UUID, error)
	GetSessionByID(ctx context.Context, sessionID uuid.UUID) (*md.Session, error)
	TerminateSession(ctx context.Context, sessionID uuid.UUID, reason string) error
	TerminateUserSessions(ctx context.Context, userID uuid.UUID, reason string) error
	RefreshHeartbeat(ctx context.Context, sessionID uuid.UUID, now time.Time) error
	ListSessions(
		ctx context.Context,
		page, size int,
		filters map[string]any,
	) (*dto.PaginatedSessionResponse, error)
}

const userCacheKey = "user:%v"

// issueSession mints a session for a user whose device is verified.
// Supersession of any previous active session happens inside the
// repository transaction.
func (c *Controller) issueSession(
	ctx context.Context,
	u *md.User,
	sourceIP string,
) (*dto.LoginResponse, error) {
	const op = "sessions.issueSession.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	token, err := c.au.NewOpaqueToken()
	if err != nil {
		return nil, err
	}

	refresh, err := c.au.NewOpaqueToken()
	if err != nil {
		return nil, err
	}

	sid, err := c.repo.CreateSession(
		ctx, u.ID, token, refresh, sourceIP, time.Now().Add(config.SessionDuration),
	)
	if err != nil {
		return nil, err
	}

	bearer, err := c.jwt.NewSessionToken(ctx, u.ID, sid, u.Role)
	if err != nil {
		return nil, err
	}

	u.Password = ""
	return &dto.LoginResponse{
		User:      u,
		Token:     bearer,
		SessionID: sid,
	}, nil
}

// Validate is the trust decision for a (user, device, session)
// triple. Every successful validation is itself a liveness signal:
// it refreshes the session heartbeat and the device last-seen stamp.
func (c *Controller) Validate(
	ctx context.Context,
	uid, sid uuid.UUID,
	fingerprintHash string,
) (*md.User, error) {
	const op = "sessions.Validate.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	u, err := c.getUserCached(ctx, uid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, err
	}

	if !u.IsActive {
		return nil, ErrSessionExpired
	}

	d, err := c.repo.GetDeviceByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrDeviceMismatch
		}
		return nil, err
	}

	// Mismatch blocks access but does not terminate the session.
	if !d.IsVerified || d.FingerprintHash != fingerprintHash {
		return nil, ErrDeviceMismatch
	}

	s, err := c.repo.GetSessionByID(ctx, sid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, err
	}

	if s.UserID != uid || !s.IsActive {
		return nil, ErrSessionExpired
	}

	now := time.Now()
	if s.Expired(now) {
		// Expiry is lazy: the row stays active until someone checks.
		if err = c.repo.TerminateSession(ctx, sid, "expired"); err != nil {
			zap.L().Error(
				"failed to terminate expired session",
				zap.String("op", op),
				zap.String("sid", sid.String()),
				zap.Error(err),
			)
		}

		return nil, ErrSessionExpired
	}

	if err = c.repo.RefreshHeartbeat(ctx, sid, now); err != nil {
		zap.L().Error(
			"failed to refresh heartbeat",
			zap.String("op", op),
			zap.String("sid", sid.String()),
			zap.Error(err),
		)
	}

	if err = c.repo.TouchDevice(ctx, uid, now); err != nil {
		zap.L().Error(
			"failed to touch device",
			zap.String("op", op),
			zap.String("uid", uid.String()),
			zap.Error(err),
		)
	}

	return u, nil
}

// Heartbeat refreshes the session liveness stamp for the real-time
// channel. It returns the session so the caller can tell a killed
// session apart from a live one.
func (c *Controller) Heartbeat(ctx context.Context, sid uuid.UUID) (*md.Session, error) {
	const op = "sessions.Heartbeat.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	s, err := c.repo.GetSessionByID(ctx, sid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !s.IsActive {
		return s, nil
	}

	if err = c.repo.RefreshHeartbeat(ctx, sid, time.Now()); err != nil {
		return nil, err
	}

	return s, nil
}

func (c *Controller) KillSession(
	ctx context.Context,
	actorRole md.Role,
	sid uuid.UUID,
	reason string,
) error {
	const op = "sessions.KillSession.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if actorRole != md.RoleAdmin {
		return ErrForbidden
	}

	s, err := c.repo.GetSessionByID(ctx, sid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err = c.repo.TerminateSession(ctx, sid, reason); err != nil {
		return err
	}

	if c.notifier != nil {
		c.notifier.NotifyKilled(s.UserID, reason)
	}

	return nil
}

// StreamKey re-runs the full validation before deriving, so an
// expired or superseded session cannot obtain a content key.
func (c *Controller) StreamKey(
	ctx context.Context,
	videoID, uid, sid uuid.UUID,
	fingerprintHash string,
) ([]byte, error) {
	const op = "sessions.StreamKey.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if _, err := c.Validate(ctx, uid, sid, fingerprintHash); err != nil {
		return nil, err
	}

	return keys.Derive(videoID, uid, sid, c.streamSecret), nil
}

func (c *Controller) ListSessions(
	ctx context.Context,
	page, size int,
	filters map[string]any,
) (*dto.PaginatedSessionResponse, error) {
	const op = "sessions.ListSessions.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return c.repo.ListSessions(ctx, page, size, filters)
}

// getUserCached serves the user row from Redis with a short TTL.
// Trust mutations that go through this service drop the entry; a row
// changed out-of-band (a DBA disabling the account directly) keeps
// validating for at most MinCacheTime before the check sees it.
func (c *Controller) getUserCached(ctx context.Context, uid uuid.UUID) (*md.User, error) {
	cached := &md.User{}
	cacheKey := fmt.Sprintf(userCacheKey, uid)
	if err := c.cache.GetToStruct(ctx, cacheKey, cached); err == nil {
		return cached, nil
	}

	u, err := c.repo.GetUserByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	c.cache.Set(ctx, config.MinCacheTime, cacheKey, u)
	return u, nil
}
