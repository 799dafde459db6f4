package db

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/JMURv/courseguard/internal/dto"
	"github.com/JMURv/courseguard/internal/repo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetDeviceByUserID(t *testing.T) {
	r, mock, closeFn := newTestRepo(t)
	defer closeFn()

	ctx := context.Background()
	deviceID := uuid.New()
	userID := uuid.New()
	now := time.Now()
	code := "123456"

	t.Run(
		"Success", func(t *testing.T) {
			rows := sqlmock.NewRows(
				[]string{
					"id", "user_id", "fingerprint_hash", "is_verified",
					"code", "code_expires_at", "verified_at",
					"user_agent", "platform", "screen", "timezone",
					"last_seen_at", "created_at",
				},
			).AddRow(
				deviceID, userID, "fp-hash", false,
				code, now.Add(15*time.Minute), nil,
				"test-agent", "linux", "1920x1080", "UTC",
				now, now,
			)
			mock.ExpectQuery(regexp.QuoteMeta(deviceGetByUserQ)).
				WithArgs(userID).
				WillReturnRows(rows)

			d, err := r.GetDeviceByUserID(ctx, userID)
			require.NoError(t, err)
			assert.Equal(t, "fp-hash", d.FingerprintHash)
			assert.False(t, d.IsVerified)
			require.NotNil(t, d.Code)
			assert.Equal(t, code, *d.Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"NotFound", func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(deviceGetByUserQ)).
				WithArgs(userID).
				WillReturnRows(sqlmock.NewRows([]string{"id"}))

			d, err := r.GetDeviceByUserID(ctx, userID)
			assert.ErrorIs(t, err, repo.ErrNotFound)
			assert.Nil(t, d)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)
}

func TestRepository_RearmDevice(t *testing.T) {
	r, mock, closeFn := newTestRepo(t)
	defer closeFn()

	ctx := context.Background()
	userID := uuid.New()
	expiry := time.Now().Add(15 * time.Minute)

	t.Run(
		"Success", func(t *testing.T) {
			mock.ExpectExec(regexp.QuoteMeta(deviceRearmQ)).
				WithArgs("new-hash", "654321", expiry, userID).
				WillReturnResult(sqlmock.NewResult(0, 1))

			err := r.RearmDevice(ctx, userID, "new-hash", "654321", expiry)
			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"NoRow", func(t *testing.T) {
			mock.ExpectExec(regexp.QuoteMeta(deviceRearmQ)).
				WithArgs("new-hash", "654321", expiry, userID).
				WillReturnResult(sqlmock.NewResult(0, 0))

			err := r.RearmDevice(ctx, userID, "new-hash", "654321", expiry)
			assert.ErrorIs(t, err, repo.ErrNotFound)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)
}

func TestRepository_MarkDeviceVerified(t *testing.T) {
	r, mock, closeFn := newTestRepo(t)
	defer closeFn()

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()

	t.Run(
		"Success", func(t *testing.T) {
			info := &dto.DeviceInfo{
				UA:       "test-agent",
				Platform: "linux",
				Screen:   "1920x1080",
				Timezone: "UTC",
			}
			mock.ExpectExec(regexp.QuoteMeta(deviceVerifyQ)).
				WithArgs(now, "fp-hash", info.UA, info.Platform, info.Screen, info.Timezone, userID).
				WillReturnResult(sqlmock.NewResult(0, 1))

			err := r.MarkDeviceVerified(ctx, userID, "fp-hash", info, now)
			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"NilInfoDefaultsEmpty", func(t *testing.T) {
			mock.ExpectExec(regexp.QuoteMeta(deviceVerifyQ)).
				WithArgs(now, "fp-hash", "", "", "", "", userID).
				WillReturnResult(sqlmock.NewResult(0, 1))

			err := r.MarkDeviceVerified(ctx, userID, "fp-hash", nil, now)
			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"NoRow", func(t *testing.T) {
			mock.ExpectExec(regexp.QuoteMeta(deviceVerifyQ)).
				WithArgs(now, "fp-hash", "", "", "", "", userID).
				WillReturnResult(sqlmock.NewResult(0, 0))

			err := r.MarkDeviceVerified(ctx, userID, "fp-hash", nil, now)
			assert.ErrorIs(t, err, repo.ErrNotFound)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)
}

func TestRepository_DeleteDevice(t *testing.T) {
	r, mock, closeFn := newTestRepo(t)
	defer closeFn()

	ctx := context.Background()
	userID := uuid.New()

	t.Run(
		"Success", func(t *testing.T) {
			mock.ExpectExec(regexp.QuoteMeta(deviceDeleteQ)).
				WithArgs(userID).
				WillReturnResult(sqlmock.NewResult(0, 1))

			err := r.DeleteDevice(ctx, userID)
			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"NotFound", func(t *testing.T) {
			mock.ExpectExec(regexp.QuoteMeta(deviceDeleteQ)).
				WithArgs(userID).
				WillReturnResult(sqlmock.NewResult(0, 0))

			err := r.DeleteDevice(ctx, userID)
			assert.ErrorIs(t, err, repo.ErrNotFound)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)
}
