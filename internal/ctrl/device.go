package ctrl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JMURv/courseguard/internal/config"
	"github.com/JMURv/courseguard/internal/dto"
	md "github.com/JMURv/courseguard/internal/models"
	"github.com/JMURv/courseguard/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type deviceCtrl interface {
	ResendCode(ctx context.Context, uid uuid.UUID) error
	ResetDevice(ctx context.Context, uid uuid.UUID) error
}

type deviceRepo interface {
	GetDeviceByUserID(ctx context.Context, userID uuid.UUID) (*md.Device, error)
	CreateDevice(
		ctx context.Context,
		userID uuid.UUID,
		fingerprintHash, code string,
		codeExpiresAt time.Time,
	) (uuid.UUID, error)
	RearmDevice(
		ctx context.Context,
		userID uuid.UUID,
		fingerprintHash, code string,
		codeExpiresAt time.Time,
	) error
	SetDeviceCode(ctx context.Context, userID uuid.UUID, code string, codeExpiresAt time.Time) error
	MarkDeviceVerified(
		ctx context.Context,
		userID uuid.UUID,
		fingerprintHash string,
		info *dto.DeviceInfo,
		now time.Time,
	) error
	TouchDevice(ctx context.Context, userID uuid.UUID, now time.Time) error
	DeleteDevice(ctx context.Context, userID uuid.UUID) error
}

// bindOrChallenge reports whether the supplied fingerprint is the
// user's verified device. Any other outcome leaves the device
// unverified with a pending code:
//   - no device yet: create one and send a fresh code;
//   - fingerprint changed: overwrite the row, drop trust, send a
//     fresh code (silently supersedes the old device);
//   - same fingerprint, still unverified: keep the pending code.
func (c *Controller) bindOrChallenge(
	ctx context.Context,
	u *md.User,
	fingerprintHash string,
) (bool, error) {
	const op = "devices.bindOrChallenge.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	d, err := c.repo.GetDeviceByUserID(ctx, u.ID)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			return false, err
		}

		code, err := c.au.NewVerificationCode()
		if err != nil {
			return false, err
		}

		expiry := time.Now().Add(config.VerificationCodeTTL)
		if _, err = c.repo.CreateDevice(ctx, u.ID, fingerprintHash, code, expiry); err != nil {
			return false, err
		}

		c.dispatchCode(u.Email, code)
		return false, nil
	}

	if d.FingerprintHash != fingerprintHash {
		code, err := c.au.NewVerificationCode()
		if err != nil {
			return false, err
		}

		expiry := time.Now().Add(config.VerificationCodeTTL)
		if err = c.repo.RearmDevice(ctx, u.ID, fingerprintHash, code, expiry); err != nil {
			return false, err
		}

		zap.L().Info(
			"device fingerprint changed, verification re-armed",
			zap.String("op", op),
			zap.String("uid", u.ID.String()),
		)

		// Trust state changed under the user, drop the cached copy.
		c.cache.Delete(ctx, fmt.Sprintf(userCacheKey, u.ID))

		c.dispatchCode(u.Email, code)
		return false, nil
	}

	return d.IsVerified, nil
}

func (c *Controller) confirmVerification(
	ctx context.Context,
	uid uuid.UUID,
	req *dto.VerifyDeviceRequest,
) error {
	const op = "devices.confirmVerification.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	d, err := c.repo.GetDeviceByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if d.Code == nil || *d.Code != req.Code {
		return ErrInvalidCode
	}

	if d.CodeExpiresAt == nil || time.Now().After(*d.CodeExpiresAt) {
		return ErrCodeExpired
	}

	return c.repo.MarkDeviceVerified(ctx, uid, req.DeviceHash, req.DeviceInfo, time.Now())
}

func (c *Controller) ResendCode(ctx context.Context, uid uuid.UUID) error {
	const op = "devices.ResendCode.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	u, err := c.repo.GetUserByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	code, err := c.au.NewVerificationCode()
	if err != nil {
		return err
	}

	err = c.repo.SetDeviceCode(ctx, uid, code, time.Now().Add(config.VerificationCodeTTL))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	c.dispatchCode(u.Email, code)
	return nil
}

// ResetDevice is the admin escape hatch: drops the device binding and
// force-terminates every session of the user.
func (c *Controller) ResetDevice(ctx context.Context, uid uuid.UUID) error {
	const op = "devices.ResetDevice.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := c.repo.DeleteDevice(ctx, uid); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := c.repo.TerminateUserSessions(ctx, uid, md.TermReasonDeviceWipe); err != nil {
		return err
	}

	c.cache.InvalidateKeysByPattern(ctx, fmt.Sprintf(userCacheKey+"*", uid))

	if c.notifier != nil {
		c.notifier.NotifyKilled(uid, md.TermReasonDeviceWipe)
	}

	return nil
}

// dispatchCode sends the verification email best-effort. A dead SMTP
// relay must not fail the login flow; the user can always resend.
func (c *Controller) dispatchCode(email, code string) {
	if err := c.email.SendVerificationCode(email, code); err != nil {
		zap.L().Error(
			"failed to dispatch verification code",
			zap.String("email", email),
			zap.Error(err),
		)
	}
}
