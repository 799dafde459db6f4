package db

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/JMURv/courseguard/internal/dto"
	md "github.com/JMURv/courseguard/internal/models"
	"github.com/JMURv/courseguard/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// CreateSession deactivates every active session of the user and
// inserts the new one inside a single transaction. The ordering plus
// the partial unique index on (user_id) WHERE is_active is what keeps
// two concurrent logins from both ending up active.
func (r *Repository) CreateSession(
	ctx context.Context,
	userID uuid.UUID,
	token, refreshToken, sourceIP string,
	expiresAt time.Time,
) (uuid.UUID, error) {
	const op = "sessions.CreateSession.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	id, err := r.createSessionTx(ctx, op, userID, token, refreshToken, sourceIP, expiresAt)
	if err != nil && isUniqueViolation(err) {
		// Two first logins for the same user can both see nothing to
		// deactivate and collide on the partial unique index. The
		// losing insert retries once and supersedes the winner.
		zap.L().Info(
			"concurrent session insert, retrying",
			zap.String("op", op),
			zap.String("uid", userID.String()),
		)
		id, err = r.createSessionTx(ctx, op, userID, token, refreshToken, sourceIP, expiresAt)
	}

	return id, err
}

func (r *Repository) createSessionTx(
	ctx context.Context,
	op string,
	userID uuid.UUID,
	token, refreshToken, sourceIP string,
	expiresAt time.Time,
) (uuid.UUID, error) {
	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				zap.L().Error("failed to rollback tx", zap.String("op", op), zap.Error(rbErr))
			}
		}
	}()

	now := time.Now()
	_, err = tx.ExecContext(ctx, sessionDeactivateActiveQ, md.TermReasonSuperseded, now, userID)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = tx.QueryRowxContext(
		ctx, sessionCreateQ, userID, token, refreshToken, sourceIP, now, expiresAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}

	if err = tx.Commit(); err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func (r *Repository) GetSessionByID(ctx context.Context, sessionID uuid.UUID) (*md.Session, error) {
	const op = "sessions.GetSessionByID.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Session{}
	err := r.conn.GetContext(ctx, res, sessionGetByIDQ, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

// TerminateSession is idempotent: terminating an already inactive
// session affects zero rows and is not an error.
func (r *Repository) TerminateSession(
	ctx context.Context,
	sessionID uuid.UUID,
	reason string,
) error {
	const op = "sessions.TerminateSession.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, sessionTerminateQ, reason, time.Now(), sessionID)
	return err
}

func (r *Repository) TerminateUserSessions(
	ctx context.Context,
	userID uuid.UUID,
	reason string,
) error {
	const op = "sessions.TerminateUserSessions.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, sessionDeactivateActiveQ, reason, time.Now(), userID)
	return err
}

func (r *Repository) ListSessions(
	ctx context.Context,
	page, size int,
	filters map[string]any,
) (*dto.PaginatedSessionResponse, error) {
	const op = "sessions.ListSessions.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	q, err := buildSessionListQuery(ctx, page, size, filters)
	if err != nil {
		return nil, err
	}

	var count int64
	if err = r.conn.GetContext(ctx, &count, q.countQ, q.countArgs...); err != nil {
		zap.L().Error("failed to count sessions", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	res := make([]*md.Session, 0, size)
	if err = r.conn.SelectContext(ctx, &res, q.dataQ, q.dataArgs...); err != nil {
		zap.L().Error("failed to list sessions", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	totalPages := int(math.Ceil(float64(count) / float64(size)))
	return &dto.PaginatedSessionResponse{
		Data:        res,
		Count:       count,
		TotalPages:  totalPages,
		CurrentPage: page,
		HasNextPage: page < totalPages,
	}, nil
}

func (r *Repository) RefreshHeartbeat(
	ctx context.Context,
	sessionID uuid.UUID,
	now time.Time,
) error {
	const op = "sessions.RefreshHeartbeat.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, sessionHeartbeatQ, now, sessionID)
	return err
}
