package ctrl

import (
	"context"
	"errors"

	"github.com/JMURv/courseguard/internal/auth"
	"github.com/JMURv/courseguard/internal/dto"
	md "github.com/JMURv/courseguard/internal/models"
	"github.com/JMURv/courseguard/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type authCtrl interface {
	Login(ctx context.Context, req *dto.LoginRequest, sourceIP string) (*dto.LoginResponse, error)
	VerifyDevice(
		ctx context.Context,
		uid uuid.UUID,
		req *dto.VerifyDeviceRequest,
		sourceIP string,
	) (*dto.LoginResponse, error)
	Logout(ctx context.Context, uid, sid uuid.UUID) error
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (uuid.UUID, error)
}

type userRepo interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (*md.User, error)
	GetUserByEmail(ctx context.Context, email string) (*md.User, error)
	CreateUser(ctx context.Context, name, password, email string, role md.Role) (uuid.UUID, error)
}

// Login authenticates by email and password, then gates on the
// device: an unknown or changed fingerprint yields a verification
// challenge instead of a session.
func (c *Controller) Login(
	ctx context.Context,
	req *dto.LoginRequest,
	sourceIP string,
) (*dto.LoginResponse, error) {
	const op = "auth.Login.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	u, err := c.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if err = c.au.ComparePasswords([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	if !u.IsActive {
		zap.L().Info(
			"login attempt for disabled account",
			zap.String("op", op),
			zap.String("uid", u.ID.String()),
		)

		return nil, auth.ErrInvalidCredentials
	}

	verified, err := c.bindOrChallenge(ctx, u, req.DeviceHash)
	if err != nil {
		return nil, err
	}

	if !verified {
		temp, err := c.jwt.NewVerificationToken(ctx, u.ID)
		if err != nil {
			return nil, err
		}

		return &dto.LoginResponse{
			RequiresDeviceVerification: true,
			TempToken:                  temp,
		}, nil
	}

	return c.issueSession(ctx, u, sourceIP)
}

// VerifyDevice completes the challenge issued by Login. The
// fingerprint and metadata supplied here overwrite whatever the
// login attempt reported.
func (c *Controller) VerifyDevice(
	ctx context.Context,
	uid uuid.UUID,
	req *dto.VerifyDeviceRequest,
	sourceIP string,
) (*dto.LoginResponse, error) {
	const op = "auth.VerifyDevice.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	u, err := c.repo.GetUserByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err = c.confirmVerification(ctx, uid, req); err != nil {
		return nil, err
	}

	return c.issueSession(ctx, u, sourceIP)
}

// CreateUser provisions an account with a hashed password. The user
// has no device binding yet; the first login triggers verification.
func (c *Controller) CreateUser(
	ctx context.Context,
	req *dto.CreateUserRequest,
) (uuid.UUID, error) {
	const op = "auth.CreateUser.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	hashed, err := c.au.HashPassword(req.Password)
	if err != nil {
		return uuid.Nil, err
	}

	role := req.Role
	if role == "" {
		role = md.RoleStudent
	}

	id, err := c.repo.CreateUser(ctx, req.Name, hashed, req.Email, role)
	if err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return uuid.Nil, ErrAlreadyExists
		}
		return uuid.Nil, err
	}

	return id, nil
}

func (c *Controller) Logout(ctx context.Context, uid, sid uuid.UUID) error {
	const op = "auth.Logout.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	s, err := c.repo.GetSessionByID(ctx, sid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	// A user may only terminate their own session through this path.
	if s.UserID != uid {
		return ErrForbidden
	}

	return c.repo.TerminateSession(ctx, sid, md.TermReasonLogout)
}
