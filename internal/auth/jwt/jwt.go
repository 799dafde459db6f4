package jwt

import (
	"context"
	"time"

	"github.com/JMURv/courseguard/internal/config"
	md "github.com/JMURv/courseguard/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

const (
	// ScopeSession grants full access for the lifetime of a session.
	ScopeSession = "session"
	// ScopeVerification only allows completing device verification.
	ScopeVerification = "device_verification"
)

type Port interface {
	NewSessionToken(ctx context.Context, uid, sid uuid.UUID, role md.Role) (string, error)
	NewVerificationToken(ctx context.Context, uid uuid.UUID) (string, error)
	ParseClaims(ctx context.Context, tokenStr string) (Claims, error)
}

type Core struct {
	secret []byte
	issuer string
}

type Claims struct {
	UID   uuid.UUID `json:"uid"`
	SID   uuid.UUID `json:"sid,omitempty"`
	Role  md.Role   `json:"role,omitempty"`
	Scope string    `json:"scope"`
	jwt.RegisteredClaims
}

func New(conf config.Config) *Core {
	return &Core{secret: []byte(conf.Auth.JWT.Secret), issuer: conf.Auth.JWT.Issuer}
}

func (c *Core) NewSessionToken(
	ctx context.Context,
	uid, sid uuid.UUID,
	role md.Role,
) (string, error) {
	const op = "auth.NewSessionToken.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return c.sign(
		&Claims{
			UID:   uid,
			SID:   sid,
			Role:  role,
			Scope: ScopeSession,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(config.SessionDuration)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				Issuer:    c.issuer,
			},
		},
	)
}

func (c *Core) NewVerificationToken(ctx context.Context, uid uuid.UUID) (string, error) {
	const op = "auth.NewVerificationToken.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return c.sign(
		&Claims{
			UID:   uid,
			Scope: ScopeVerification,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(config.TempTokenDuration)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				Issuer:    c.issuer,
			},
		},
	)
}

func (c *Core) sign(claims *Claims) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		zap.L().Error(
			ErrWhileCreatingToken.Error(),
			zap.Error(err),
		)

		return "", ErrWhileCreatingToken
	}

	return signed, nil
}

func (c *Core) ParseClaims(ctx context.Context, tokenStr string) (Claims, error) {
	const op = "auth.ParseClaims.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims := Claims{}
	token, err := jwt.ParseWithClaims(
		tokenStr, &claims, func(token *jwt.Token) (any, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, ErrUnexpectedSignMethod
			}

			return c.secret, nil
		},
	)
	if err != nil {
		zap.L().Debug(
			"Failed to parse claims",
			zap.String("op", op),
			zap.Error(err),
		)

		return claims, ErrInvalidToken
	}

	if !token.Valid {
		return claims, ErrInvalidToken
	}

	return claims, nil
}
