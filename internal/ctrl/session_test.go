package ctrl

import (
	"context"
	"testing"
	"time"

	"github.com/JMURv/courseguard/internal/keys"
	"github.com/JMURv/courseguard/internal/models"
	"github.com/JMURv/courseguard/internal/repo"
	"github.com/JMURv/courseguard/tests/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestController_Validate(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockCore(ctrlMock)
	mockJWT := mocks.NewMockPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockEmail := mocks.NewMockEmailService(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockJWT, mockRepo, mockCache, mockEmail, []byte("stream-secret"))

	testUserID := uuid.New()
	testSessionID := uuid.New()
	testHash := "fp-hash-aaaa"

	newUser := func() *models.User {
		return &models.User{ID: testUserID, Email: "test@example.com", IsActive: true}
	}

	verifiedDevice := &models.Device{
		UserID:          testUserID,
		FingerprintHash: testHash,
		IsVerified:      true,
	}

	liveSession := func() *models.Session {
		return &models.Session{
			ID:        testSessionID,
			UserID:    testUserID,
			IsActive:  true,
			ExpiresAt: time.Now().Add(time.Hour),
		}
	}

	cacheMiss := func() {
		mockCache.EXPECT().
			GetToStruct(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repo.ErrNotFound)
		mockRepo.EXPECT().
			GetUserByID(gomock.Any(), testUserID).
			Return(newUser(), nil)
		mockCache.EXPECT().
			Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
	}

	tests := []struct {
		name    string
		setup   func()
		wantErr error
	}{
		{
			name: "Success",
			setup: func() {
				cacheMiss()
				mockRepo.EXPECT().
					GetDeviceByUserID(gomock.Any(), testUserID).
					Return(verifiedDevice, nil)
				mockRepo.EXPECT().
					GetSessionByID(gomock.Any(), testSessionID).
					Return(liveSession(), nil)
				mockRepo.EXPECT().
					RefreshHeartbeat(gomock.Any(), testSessionID, gomock.Any()).
					Return(nil)
				mockRepo.EXPECT().
					TouchDevice(gomock.Any(), testUserID, gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "CacheHit",
			setup: func() {
				mockCache.EXPECT().
					GetToStruct(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(
						func(_ context.Context, _ string, dest any) error {
							*dest.(*models.User) = *newUser()
							return nil
						},
					)
				mockRepo.EXPECT().
					GetDeviceByUserID(gomock.Any(), testUserID).
					Return(verifiedDevice, nil)
				mockRepo.EXPECT().
					GetSessionByID(gomock.Any(), testSessionID).
					Return(liveSession(), nil)
				mockRepo.EXPECT().
					RefreshHeartbeat(gomock.Any(), testSessionID, gomock.Any()).
					Return(nil)
				mockRepo.EXPECT().
					TouchDevice(gomock.Any(), testUserID, gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "UserGone",
			setup: func() {
				mockCache.EXPECT().
					GetToStruct(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(repo.ErrNotFound)
				mockRepo.EXPECT().
					GetUserByID(gomock.Any(), testUserID).
					Return(nil, repo.ErrNotFound)
			},
			wantErr: ErrSessionExpired,
		},
		{
			name: "DisabledUser",
			setup: func() {
				mockCache.EXPECT().
					GetToStruct(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(repo.ErrNotFound)
				u := newUser()
				u.IsActive = false
				mockRepo.EXPECT().
					GetUserByID(gomock.Any(), testUserID).
					Return(u, nil)
				mockCache.EXPECT().
					Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
			wantErr: ErrSessionExpired,
		},
		{
			name: "NoDevice",
			setup: func() {
				cacheMiss()
				mockRepo.EXPECT().
					GetDeviceByUserID(gomock.Any(), testUserID).
					Return(nil, repo.ErrNotFound)
			},
			wantErr: ErrDeviceMismatch,
		},
		{
			// The session must stay untouched on a fingerprint
			// mismatch, so no TerminateSession call is expected here.
			name: "FingerprintMismatch",
			setup: func() {
				cacheMiss()
				mockRepo.EXPECT().
					GetDeviceByUserID(gomock.Any(), testUserID).
					Return(&models.Device{
						UserID:          testUserID,
						FingerprintHash: "fp-hash-other",
						IsVerified:      true,
					}, nil)
			},
			wantErr: ErrDeviceMismatch,
		},
		{
			name: "UnverifiedDevice",
			setup: func() {
				cacheMiss()
				mockRepo.EXPECT().
					GetDeviceByUserID(gomock.Any(), testUserID).
					Return(&models.Device{
						UserID:          testUserID,
						FingerprintHash: testHash,
						IsVerified:      false,
					}, nil)
			},
			wantErr: ErrDeviceMismatch,
		},
		{
			name: "SessionGone",
			setup: func() {
				cacheMiss()
				mockRepo.EXPECT().
					GetDeviceByUserID(gomock.Any(), testUserID).
					Return(verifiedDevice, nil)
				mockRepo.EXPECT().
					GetSessionByID(gomock.Any(), testSessionID).
					Return(nil, repo.ErrNotFound)
			},
			wantErr: ErrSessionExpired,
		},
		{
			name: "SessionSuperseded",
			setup: func() {
				cacheMiss()
				mockRepo.EXPECT().
					GetDeviceByUserID(gomock.Any(), testUserID).
					Return(verifiedDevice, nil)
				s := liveSession()
				s.IsActive = false
				mockRepo.EXPECT().
					GetSessionByID(gomock.Any(), testSessionID).
					Return(s, nil)
			},
			wantErr: ErrSessionExpired,
		},
		{
			name: "ForeignSession",
			setup: func() {
				cacheMiss()
				mockRepo.EXPECT().
					GetDeviceByUserID(gomock.Any(), testUserID).
					Return(verifiedDevice, nil)
				s := liveSession()
				s.UserID = uuid.New()
				mockRepo.EXPECT().
					GetSessionByID(gomock.Any(), testSessionID).
					Return(s, nil)
			},
			wantErr: ErrSessionExpired,
		},
		{
			// Past the deadline the row is terminated lazily, right here.
			name: "LazyExpiry",
			setup: func() {
				cacheMiss()
				mockRepo.EXPECT().
					GetDeviceByUserID(gomock.Any(), testUserID).
					Return(verifiedDevice, nil)
				s := liveSession()
				s.ExpiresAt = time.Now().Add(-time.Minute)
				mockRepo.EXPECT().
					GetSessionByID(gomock.Any(), testSessionID).
					Return(s, nil)
				mockRepo.EXPECT().
					TerminateSession(gomock.Any(), testSessionID, "expired").
					Return(nil)
			},
			wantErr: ErrSessionExpired,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				tt.setup()

				u, err := ctrl.Validate(ctx, testUserID, testSessionID, testHash)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
					assert.Nil(t, u)
					return
				}

				require.NoError(t, err)
				require.NotNil(t, u)
				assert.Equal(t, testUserID, u.ID)
			},
		)
	}
}

func TestController_Heartbeat(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockCore(ctrlMock)
	mockJWT := mocks.NewMockPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockEmail := mocks.NewMockEmailService(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockJWT, mockRepo, mockCache, mockEmail, []byte("stream-secret"))

	testSessionID := uuid.New()

	t.Run(
		"ActiveRefreshes", func(t *testing.T) {
			mockRepo.EXPECT().
				GetSessionByID(gomock.Any(), testSessionID).
				Return(&models.Session{ID: testSessionID, IsActive: true}, nil)
			mockRepo.EXPECT().
				RefreshHeartbeat(gomock.Any(), testSessionID, gomock.Any()).
				Return(nil)

			s, err := ctrl.Heartbeat(ctx, testSessionID)
			require.NoError(t, err)
			assert.True(t, s.IsActive)
		},
	)

	t.Run(
		"KilledReturnsRow", func(t *testing.T) {
			reason := models.TermReasonSuperseded
			mockRepo.EXPECT().
				GetSessionByID(gomock.Any(), testSessionID).
				Return(&models.Session{ID: testSessionID, IsActive: false, TermReason: &reason}, nil)

			s, err := ctrl.Heartbeat(ctx, testSessionID)
			require.NoError(t, err)
			assert.False(t, s.IsActive)
			assert.Equal(t, models.TermReasonSuperseded, *s.TermReason)
		},
	)

	t.Run(
		"NotFound", func(t *testing.T) {
			mockRepo.EXPECT().
				GetSessionByID(gomock.Any(), testSessionID).
				Return(nil, repo.ErrNotFound)

			_, err := ctrl.Heartbeat(ctx, testSessionID)
			assert.ErrorIs(t, err, ErrNotFound)
		},
	)
}

func TestController_KillSession(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockCore(ctrlMock)
	mockJWT := mocks.NewMockPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockEmail := mocks.NewMockEmailService(ctrlMock)
	mockNotifier := mocks.NewMockSessionNotifier(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockJWT, mockRepo, mockCache, mockEmail, []byte("stream-secret"))
	ctrl.SetNotifier(mockNotifier)

	testUserID := uuid.New()
	testSessionID := uuid.New()

	t.Run(
		"NonAdminForbidden", func(t *testing.T) {
			err := ctrl.KillSession(ctx, models.RoleStudent, testSessionID, "policy violation")
			assert.ErrorIs(t, err, ErrForbidden)
		},
	)

	t.Run(
		"AdminKillNotifies", func(t *testing.T) {
			mockRepo.EXPECT().
				GetSessionByID(gomock.Any(), testSessionID).
				Return(&models.Session{ID: testSessionID, UserID: testUserID, IsActive: true}, nil)
			mockRepo.EXPECT().
				TerminateSession(gomock.Any(), testSessionID, "policy violation").
				Return(nil)
			mockNotifier.EXPECT().
				NotifyKilled(testUserID, "policy violation")

			err := ctrl.KillSession(ctx, models.RoleAdmin, testSessionID, "policy violation")
			assert.NoError(t, err)
		},
	)

	t.Run(
		"NotFound", func(t *testing.T) {
			mockRepo.EXPECT().
				GetSessionByID(gomock.Any(), testSessionID).
				Return(nil, repo.ErrNotFound)

			err := ctrl.KillSession(ctx, models.RoleAdmin, testSessionID, "policy violation")
			assert.ErrorIs(t, err, ErrNotFound)
		},
	)
}

func TestController_StreamKey(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockCore(ctrlMock)
	mockJWT := mocks.NewMockPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)
	mockEmail := mocks.NewMockEmailService(ctrlMock)

	ctx := context.Background()
	secret := []byte("stream-secret")
	ctrl := New(mockAuth, mockJWT, mockRepo, mockCache, mockEmail, secret)

	testUserID := uuid.New()
	testSessionID := uuid.New()
	testVideoID := uuid.New()
	testHash := "fp-hash-aaaa"

	t.Run(
		"Success", func(t *testing.T) {
			mockCache.EXPECT().
				GetToStruct(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(repo.ErrNotFound)
			mockRepo.EXPECT().
				GetUserByID(gomock.Any(), testUserID).
				Return(&models.User{ID: testUserID, IsActive: true}, nil)
			mockCache.EXPECT().
				Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			mockRepo.EXPECT().
				GetDeviceByUserID(gomock.Any(), testUserID).
				Return(&models.Device{
					UserID:          testUserID,
					FingerprintHash: testHash,
					IsVerified:      true,
				}, nil)
			mockRepo.EXPECT().
				GetSessionByID(gomock.Any(), testSessionID).
				Return(&models.Session{
					ID:        testSessionID,
					UserID:    testUserID,
					IsActive:  true,
					ExpiresAt: time.Now().Add(time.Hour),
				}, nil)
			mockRepo.EXPECT().
				RefreshHeartbeat(gomock.Any(), testSessionID, gomock.Any()).
				Return(nil)
			mockRepo.EXPECT().
				TouchDevice(gomock.Any(), testUserID, gomock.Any()).
				Return(nil)

			key, err := ctrl.StreamKey(ctx, testVideoID, testUserID, testSessionID, testHash)
			require.NoError(t, err)
			assert.Len(t, key, keys.KeySize)
			assert.Equal(t, keys.Derive(testVideoID, testUserID, testSessionID, secret), key)
		},
	)

	t.Run(
		"DeniedWithoutLiveSession", func(t *testing.T) {
			mockCache.EXPECT().
				GetToStruct(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(repo.ErrNotFound)
			mockRepo.EXPECT().
				GetUserByID(gomock.Any(), testUserID).
				Return(nil, repo.ErrNotFound)

			key, err := ctrl.StreamKey(ctx, testVideoID, testUserID, testSessionID, testHash)
			assert.ErrorIs(t, err, ErrSessionExpired)
			assert.Nil(t, key)
		},
	)
}
