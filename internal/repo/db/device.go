package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/JMURv/courseguard/internal/dto"
	md "github.com/JMURv/courseguard/internal/models"
	"github.com/JMURv/courseguard/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

func (r *Repository) GetDeviceByUserID(ctx context.Context, userID uuid.UUID) (*md.Device, error) {
	const op = "devices.GetDeviceByUserID.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Device{}
	err := r.conn.GetContext(ctx, res, deviceGetByUserQ, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) CreateDevice(
	ctx context.Context,
	userID uuid.UUID,
	fingerprintHash, code string,
	codeExpiresAt time.Time,
) (uuid.UUID, error) {
	const op = "devices.CreateDevice.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id uuid.UUID
	err := r.conn.QueryRowxContext(
		ctx, deviceCreateQ, userID, fingerprintHash, code, codeExpiresAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

// RearmDevice overwrites the stored fingerprint and drops trust, so
// the user has to verify the new device before any session is issued.
func (r *Repository) RearmDevice(
	ctx context.Context,
	userID uuid.UUID,
	fingerprintHash, code string,
	codeExpiresAt time.Time,
) error {
	const op = "devices.RearmDevice.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, deviceRearmQ, fingerprintHash, code, codeExpiresAt, userID)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *Repository) SetDeviceCode(
	ctx context.Context,
	userID uuid.UUID,
	code string,
	codeExpiresAt time.Time,
) error {
	const op = "devices.SetDeviceCode.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, deviceSetCodeQ, code, codeExpiresAt, userID)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

// MarkDeviceVerified clears the code fields and stores the metadata
// reported at verification time, which wins over login-time values.
func (r *Repository) MarkDeviceVerified(
	ctx context.Context,
	userID uuid.UUID,
	fingerprintHash string,
	info *dto.DeviceInfo,
	now time.Time,
) error {
	const op = "devices.MarkDeviceVerified.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if info == nil {
		info = &dto.DeviceInfo{}
	}

	res, err := r.conn.ExecContext(
		ctx, deviceVerifyQ,
		now, fingerprintHash, info.UA, info.Platform, info.Screen, info.Timezone, userID,
	)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *Repository) TouchDevice(ctx context.Context, userID uuid.UUID, now time.Time) error {
	const op = "devices.TouchDevice.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, deviceTouchQ, now, userID)
	return err
}

func (r *Repository) DeleteDevice(ctx context.Context, userID uuid.UUID) error {
	const op = "devices.DeleteDevice.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, deviceDeleteQ, userID)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}
