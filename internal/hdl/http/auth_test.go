package http

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JMURv/courseguard/internal/auth"
	"github.com/JMURv/courseguard/internal/config"
	"github.com/JMURv/courseguard/internal/ctrl"
	"github.com/JMURv/courseguard/internal/dto"
	"github.com/JMURv/courseguard/internal/hdl"
	"github.com/JMURv/courseguard/internal/hdl/http/utils"
	"github.com/JMURv/courseguard/internal/models"
	"github.com/JMURv/courseguard/tests/mocks"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Login(t *testing.T) {
	const uri = "/auth/login"
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	mauth := mocks.NewMockPort(mock)
	h := New(mauth, mctrl, nil)

	validPayload := map[string]any{
		"email":      "example@mail.com",
		"password":   "password",
		"deviceHash": "fp-hash-aaaa",
	}

	tests := []struct {
		name       string
		status     int
		payload    map[string]any
		expect     func()
		assertions func(r *httptest.ResponseRecorder)
	}{
		{
			name:    "ErrDecodeRequest",
			status:  http.StatusBadRequest,
			payload: map[string]any{"email": 0},
			expect:  func() {},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorResponse{}
				require.NoError(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, hdl.ErrDecodeRequest.Error(), res.Error)
			},
		},
		{
			name:   "ErrMissingDeviceHash",
			status: http.StatusBadRequest,
			payload: map[string]any{
				"email":    "example@mail.com",
				"password": "password",
			},
			expect:     func() {},
			assertions: func(r *httptest.ResponseRecorder) {},
		},
		{
			name:    "InvalidCredentials",
			status:  http.StatusUnauthorized,
			payload: validPayload,
			expect: func() {
				mctrl.EXPECT().
					Login(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, auth.ErrInvalidCredentials)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorResponse{}
				require.NoError(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, auth.ErrInvalidCredentials.Error(), res.Error)
			},
		},
		{
			name:    "InternalError",
			status:  http.StatusInternalServerError,
			payload: validPayload,
			expect: func() {
				mctrl.EXPECT().
					Login(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("conn refused"))
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorResponse{}
				require.NoError(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, hdl.ErrInternal.Error(), res.Error)
			},
		},
		{
			name:    "ChallengeWhenDeviceUntrusted",
			status:  http.StatusOK,
			payload: validPayload,
			expect: func() {
				mctrl.EXPECT().
					Login(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&dto.LoginResponse{
						RequiresDeviceVerification: true,
						TempToken:                  "temp-token",
					}, nil)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.Response{}
				require.NoError(t, json.NewDecoder(r.Result().Body).Decode(res))
				data := res.Data.(map[string]any)
				assert.Equal(t, true, data["requiresDeviceVerification"])
				assert.Equal(t, "temp-token", data["tempToken"])
			},
		},
		{
			name:    "Success",
			status:  http.StatusOK,
			payload: validPayload,
			expect: func() {
				mctrl.EXPECT().
					Login(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&dto.LoginResponse{
						Token:     "bearer-token",
						SessionID: uuid.New(),
					}, nil)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.Response{}
				require.NoError(t, json.NewDecoder(r.Result().Body).Decode(res))
				data := res.Data.(map[string]any)
				assert.Equal(t, "bearer-token", data["token"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				tt.expect()

				body, _ := json.Marshal(tt.payload)
				req := httptest.NewRequest(http.MethodPost, uri, bytes.NewBuffer(body))
				req.Header.Set("Content-Type", "application/json")

				w := httptest.NewRecorder()
				h.login(w, req)

				assert.Equal(t, tt.status, w.Code)
				tt.assertions(w)
			},
		)
	}
}

func TestHandler_VerifyDevice(t *testing.T) {
	const uri = "/auth/verify-device"
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	mauth := mocks.NewMockPort(mock)
	h := New(mauth, mctrl, nil)

	testUID := uuid.New()
	validPayload := map[string]any{
		"code":       "123456",
		"deviceHash": "fp-hash-aaaa",
	}

	tests := []struct {
		name       string
		status     int
		uid        any
		payload    map[string]any
		expect     func()
		assertions func(r *httptest.ResponseRecorder)
	}{
		{
			name:       "NoUIDInContext",
			status:     http.StatusInternalServerError,
			uid:        nil,
			payload:    validPayload,
			expect:     func() {},
			assertions: func(r *httptest.ResponseRecorder) {},
		},
		{
			name:       "ErrBadCodeFormat",
			status:     http.StatusBadRequest,
			uid:        testUID,
			payload:    map[string]any{"code": "12", "deviceHash": "fp-hash-aaaa"},
			expect:     func() {},
			assertions: func(r *httptest.ResponseRecorder) {},
		},
		{
			name:    "InvalidCode",
			status:  http.StatusUnauthorized,
			uid:     testUID,
			payload: validPayload,
			expect: func() {
				mctrl.EXPECT().
					VerifyDevice(gomock.Any(), testUID, gomock.Any(), gomock.Any()).
					Return(nil, ctrl.ErrInvalidCode)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorResponse{}
				require.NoError(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, hdl.CodeInvalidCode, res.Code)
			},
		},
		{
			name:    "CodeExpired",
			status:  http.StatusUnauthorized,
			uid:     testUID,
			payload: validPayload,
			expect: func() {
				mctrl.EXPECT().
					VerifyDevice(gomock.Any(), testUID, gomock.Any(), gomock.Any()).
					Return(nil, ctrl.ErrCodeExpired)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorResponse{}
				require.NoError(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, hdl.CodeCodeExpired, res.Code)
			},
		},
		{
			name:    "Success",
			status:  http.StatusOK,
			uid:     testUID,
			payload: validPayload,
			expect: func() {
				mctrl.EXPECT().
					VerifyDevice(gomock.Any(), testUID, gomock.Any(), gomock.Any()).
					Return(&dto.LoginResponse{Token: "bearer-token"}, nil)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.Response{}
				require.NoError(t, json.NewDecoder(r.Result().Body).Decode(res))
				data := res.Data.(map[string]any)
				assert.Equal(t, "bearer-token", data["token"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				tt.expect()

				body, _ := json.Marshal(tt.payload)
				req := httptest.NewRequest(http.MethodPost, uri, bytes.NewBuffer(body))
				req.Header.Set("Content-Type", "application/json")
				if tt.uid != nil {
					req = req.WithContext(
						context.WithValue(req.Context(), config.UidKey, tt.uid),
					)
				}

				w := httptest.NewRecorder()
				h.verifyDevice(w, req)

				assert.Equal(t, tt.status, w.Code)
				tt.assertions(w)
			},
		)
	}
}

func TestHandler_CheckSession(t *testing.T) {
	const uri = "/auth/session"
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	mauth := mocks.NewMockPort(mock)
	h := New(mauth, mctrl, nil)

	testUID := uuid.New()
	testSID := uuid.New()
	testHash := "fp-hash-aaaa"

	newReq := func(withHash bool) *http.Request {
		req := httptest.NewRequest(http.MethodGet, uri, nil)
		ctx := context.WithValue(req.Context(), config.UidKey, testUID)
		ctx = context.WithValue(ctx, config.SidKey, testSID)
		if withHash {
			req.Header.Set(config.DeviceHashHeader, testHash)
		}
		return req.WithContext(ctx)
	}

	t.Run(
		"MissingDeviceHashHeader", func(t *testing.T) {
			w := httptest.NewRecorder()
			h.checkSession(w, newReq(false))

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			res := &utils.ErrorResponse{}
			require.NoError(t, json.NewDecoder(w.Result().Body).Decode(res))
			assert.Equal(t, hdl.CodeDeviceMismatch, res.Code)
		},
	)

	t.Run(
		"DeviceMismatch", func(t *testing.T) {
			mctrl.EXPECT().
				Validate(gomock.Any(), testUID, testSID, testHash).
				Return(nil, ctrl.ErrDeviceMismatch)

			w := httptest.NewRecorder()
			h.checkSession(w, newReq(true))

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			res := &utils.ErrorResponse{}
			require.NoError(t, json.NewDecoder(w.Result().Body).Decode(res))
			assert.Equal(t, hdl.CodeDeviceMismatch, res.Code)
		},
	)

	t.Run(
		"SessionExpired", func(t *testing.T) {
			mctrl.EXPECT().
				Validate(gomock.Any(), testUID, testSID, testHash).
				Return(nil, ctrl.ErrSessionExpired)

			w := httptest.NewRecorder()
			h.checkSession(w, newReq(true))

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			res := &utils.ErrorResponse{}
			require.NoError(t, json.NewDecoder(w.Result().Body).Decode(res))
			assert.Equal(t, hdl.CodeSessionExpired, res.Code)
		},
	)

	t.Run(
		"Success", func(t *testing.T) {
			mctrl.EXPECT().
				Validate(gomock.Any(), testUID, testSID, testHash).
				Return(&models.User{ID: testUID, IsActive: true}, nil)

			w := httptest.NewRecorder()
			h.checkSession(w, newReq(true))

			assert.Equal(t, http.StatusOK, w.Code)
			res := &utils.Response{}
			require.NoError(t, json.NewDecoder(w.Result().Body).Decode(res))
			data := res.Data.(map[string]any)
			assert.Equal(t, true, data["valid"])
		},
	)
}

func TestHandler_Logout(t *testing.T) {
	const uri = "/auth/logout"
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	mauth := mocks.NewMockPort(mock)
	h := New(mauth, mctrl, nil)

	testUID := uuid.New()
	testSID := uuid.New()

	newReq := func() *http.Request {
		req := httptest.NewRequest(http.MethodPost, uri, nil)
		ctx := context.WithValue(req.Context(), config.UidKey, testUID)
		ctx = context.WithValue(ctx, config.SidKey, testSID)
		return req.WithContext(ctx)
	}

	tests := []struct {
		name   string
		status int
		expect func()
	}{
		{
			name:   "Success",
			status: http.StatusOK,
			expect: func() {
				mctrl.EXPECT().
					Logout(gomock.Any(), testUID, testSID).
					Return(nil)
			},
		},
		{
			name:   "NotFound",
			status: http.StatusNotFound,
			expect: func() {
				mctrl.EXPECT().
					Logout(gomock.Any(), testUID, testSID).
					Return(ctrl.ErrNotFound)
			},
		},
		{
			name:   "Forbidden",
			status: http.StatusForbidden,
			expect: func() {
				mctrl.EXPECT().
					Logout(gomock.Any(), testUID, testSID).
					Return(ctrl.ErrForbidden)
			},
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				tt.expect()

				w := httptest.NewRecorder()
				h.logout(w, newReq())

				assert.Equal(t, tt.status, w.Code)
			},
		)
	}
}
