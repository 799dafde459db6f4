package db

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	md "github.com/JMURv/courseguard/internal/models"
	"github.com/JMURv/courseguard/internal/repo"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_CreateUser(t *testing.T) {
	r, mock, closeFn := newTestRepo(t)
	defer closeFn()

	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name        string
		mock        func()
		expectedErr error
	}{
		{
			name: "Success",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(userCreateQ)).
					WithArgs("Test User", "hashed", "test@example.com", md.RoleStudent, true).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(userID))
			},
		},
		{
			name: "DuplicateEmail",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(userCreateQ)).
					WithArgs("Test User", "hashed", "test@example.com", md.RoleStudent, true).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
			},
			expectedErr: repo.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				tt.mock()

				id, err := r.CreateUser(ctx, "Test User", "hashed", "test@example.com", md.RoleStudent)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
					assert.Equal(t, uuid.Nil, id)
				} else {
					require.NoError(t, err)
					assert.Equal(t, userID, id)
				}

				assert.NoError(t, mock.ExpectationsWereMet())
			},
		)
	}
}

func TestRepository_GetUserByEmail(t *testing.T) {
	r, mock, closeFn := newTestRepo(t)
	defer closeFn()

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()

	t.Run(
		"Success", func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(userGetByEmailQ)).
				WithArgs("test@example.com").
				WillReturnRows(
					sqlmock.NewRows(
						[]string{"id", "name", "email", "password", "role", "is_active", "created_at", "updated_at"},
					).AddRow(
						userID, "Test User", "test@example.com", "hashed",
						md.RoleStudent, true, now, now,
					),
				)

			u, err := r.GetUserByEmail(ctx, "test@example.com")
			require.NoError(t, err)
			assert.Equal(t, userID, u.ID)
			assert.True(t, u.IsActive)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"NotFound", func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(userGetByEmailQ)).
				WithArgs("missing@example.com").
				WillReturnRows(
					sqlmock.NewRows(
						[]string{"id", "name", "email", "password", "role", "is_active", "created_at", "updated_at"},
					),
				)

			_, err := r.GetUserByEmail(ctx, "missing@example.com")
			assert.ErrorIs(t, err, repo.ErrNotFound)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)
}
