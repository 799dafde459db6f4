package http

import (
	"errors"
	"net"
	"net/http"

	"github.com/JMURv/courseguard/internal/auth"
	"github.com/JMURv/courseguard/internal/config"
	"github.com/JMURv/courseguard/internal/ctrl"
	"github.com/JMURv/courseguard/internal/dto"
	"github.com/JMURv/courseguard/internal/hdl"
	mid "github.com/JMURv/courseguard/internal/hdl/http/middleware"
	"github.com/JMURv/courseguard/internal/hdl/http/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (h *Handler) RegisterAuthRoutes() {
	h.router.Post("/auth/login", h.login)
	h.router.With(mid.VerificationAuth(h.au)).Post("/auth/verify-device", h.verifyDevice)
	h.router.With(mid.VerificationAuth(h.au)).Post("/auth/resend-code", h.resendCode)
	h.router.With(mid.Auth(h.au)).Get("/auth/session", h.checkSession)
	h.router.With(mid.Auth(h.au)).Post("/auth/logout", h.logout)
}

func sourceIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// login godoc
//
//	@Summary		Authenticate using email & password
//	@Description	Authenticates and gates on the device: an untrusted device yields a verification challenge instead of a session
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.LoginRequest	true	"Login credentials and device fingerprint"
//	@Success		200		{object}	dto.LoginResponse
//	@Failure		400		{object}	utils.ErrorResponse
//	@Failure		401		{object}	utils.ErrorResponse
//	@Failure		500		{object}	utils.ErrorResponse
//	@Router			/auth/login [post]
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	req := &dto.LoginRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.Login(r.Context(), req, sourceIP(r))
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			utils.ErrResponse(w, http.StatusUnauthorized, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// verifyDevice godoc
//
//	@Summary		Complete device verification
//	@Description	Confirms the emailed code, marks the device trusted and issues a session
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			Authorization	header		string					true	"Verification-scope bearer token"
//	@Param			body			body		dto.VerifyDeviceRequest	true	"Code, fingerprint and device metadata"
//	@Success		200				{object}	dto.LoginResponse
//	@Failure		400				{object}	utils.ErrorResponse
//	@Failure		401				{object}	utils.ErrorResponse
//	@Failure		404				{object}	utils.ErrorResponse
//	@Failure		500				{object}	utils.ErrorResponse
//	@Router			/auth/verify-device [post]
func (h *Handler) verifyDevice(w http.ResponseWriter, r *http.Request) {
	uid, ok := r.Context().Value(config.UidKey).(uuid.UUID)
	if !ok || uid == uuid.Nil {
		zap.L().Error(
			hdl.ErrFailedToGetUUID.Error(),
			zap.Any("uid", r.Context().Value(config.UidKey)),
		)
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	req := &dto.VerifyDeviceRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.VerifyDevice(r.Context(), uid, req, sourceIP(r))
	if err != nil {
		switch {
		case errors.Is(err, ctrl.ErrInvalidCode):
			utils.ErrCodeResponse(w, http.StatusUnauthorized, err, hdl.CodeInvalidCode)
		case errors.Is(err, ctrl.ErrCodeExpired):
			utils.ErrCodeResponse(w, http.StatusUnauthorized, err, hdl.CodeCodeExpired)
		case errors.Is(err, ctrl.ErrNotFound):
			utils.ErrResponse(w, http.StatusNotFound, err)
		default:
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// resendCode godoc
//
//	@Summary		Resend the device verification code
//	@Tags			Authentication
//	@Produce		json
//	@Param			Authorization	header	string	true	"Verification-scope bearer token"
//	@Success		200				"Code regenerated and dispatched"
//	@Failure		404				{object}	utils.ErrorResponse	"no device to verify"
//	@Failure		500				{object}	utils.ErrorResponse	"internal error"
//	@Router			/auth/resend-code [post]
func (h *Handler) resendCode(w http.ResponseWriter, r *http.Request) {
	uid, ok := r.Context().Value(config.UidKey).(uuid.UUID)
	if !ok || uid == uuid.Nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	if err := h.ctrl.ResendCode(r.Context(), uid); err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, http.StatusOK)
}

// checkSession godoc
//
//	@Summary		Validate the current session
//	@Description	Re-runs the full device and session trust checks; a success is itself a liveness signal
//	@Tags			Authentication
//	@Produce		json
//	@Param			Authorization	header		string	true	"Session bearer token"
//	@Param			X-Device-Hash	header		string	true	"Client device fingerprint hash"
//	@Success		200				{object}	dto.SessionCheckResponse
//	@Failure		401				{object}	utils.ErrorResponse	"SESSION_EXPIRED or DEVICE_MISMATCH"
//	@Failure		500				{object}	utils.ErrorResponse
//	@Router			/auth/session [get]
func (h *Handler) checkSession(w http.ResponseWriter, r *http.Request) {
	uid, sid, ok := sessionIdentity(r)
	if !ok {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	deviceHash := r.Header.Get(config.DeviceHashHeader)
	if deviceHash == "" {
		utils.ErrCodeResponse(
			w, http.StatusUnauthorized, hdl.ErrMissingDeviceHash, hdl.CodeDeviceMismatch,
		)
		return
	}

	u, err := h.ctrl.Validate(r.Context(), uid, sid, deviceHash)
	if err != nil {
		respondValidationErr(w, err)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, &dto.SessionCheckResponse{Valid: true, User: u})
}

// logout godoc
//
//	@Summary		Logout user
//	@Description	Terminates the caller's own session
//	@Tags			Authentication
//	@Produce		json
//	@Param			Authorization	header	string	true	"Session bearer token"
//	@Success		200				"Session terminated"
//	@Failure		404				{object}	utils.ErrorResponse	"session not found"
//	@Failure		500				{object}	utils.ErrorResponse	"internal error"
//	@Router			/auth/logout [post]
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	uid, sid, ok := sessionIdentity(r)
	if !ok {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	if err := h.ctrl.Logout(r.Context(), uid, sid); err != nil {
		switch {
		case errors.Is(err, ctrl.ErrNotFound):
			utils.ErrResponse(w, http.StatusNotFound, err)
		case errors.Is(err, ctrl.ErrForbidden):
			utils.ErrResponse(w, http.StatusForbidden, err)
		default:
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}
		return
	}

	utils.StatusResponse(w, http.StatusOK)
}

func sessionIdentity(r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	uid, ok := r.Context().Value(config.UidKey).(uuid.UUID)
	if !ok || uid == uuid.Nil {
		return uuid.Nil, uuid.Nil, false
	}

	sid, ok := r.Context().Value(config.SidKey).(uuid.UUID)
	if !ok || sid == uuid.Nil {
		return uuid.Nil, uuid.Nil, false
	}

	return uid, sid, true
}

func respondValidationErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ctrl.ErrDeviceMismatch):
		utils.ErrCodeResponse(w, http.StatusUnauthorized, err, hdl.CodeDeviceMismatch)
	case errors.Is(err, ctrl.ErrSessionExpired):
		utils.ErrCodeResponse(w, http.StatusUnauthorized, err, hdl.CodeSessionExpired)
	default:
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
	}
}
