package http

import (
	"net/http"

	"github.com/JMURv/courseguard/internal/config"
	"github.com/JMURv/courseguard/internal/hdl"
	mid "github.com/JMURv/courseguard/internal/hdl/http/middleware"
	"github.com/JMURv/courseguard/internal/hdl/http/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) RegisterStreamRoutes() {
	h.router.With(mid.Auth(h.au)).Get("/stream/{videoId}/key", h.streamKey)
}

// streamKey godoc
//
//	@Summary		Derive the content key for a video
//	@Description	Re-validates the full (user, device, session) trust triple, then derives the session-bound 16-byte key
//	@Tags			Stream
//	@Produce		application/octet-stream
//	@Param			videoId			path		string	true	"Video ID"
//	@Param			Authorization	header		string	true	"Session bearer token"
//	@Param			X-Device-Hash	header		string	true	"Client device fingerprint hash"
//	@Success		200				{string}	binary	"16-byte key"
//	@Failure		401				{object}	utils.ErrorResponse	"SESSION_EXPIRED or DEVICE_MISMATCH"
//	@Failure		500				{object}	utils.ErrorResponse
//	@Router			/stream/{videoId}/key [get]
func (h *Handler) streamKey(w http.ResponseWriter, r *http.Request) {
	uid, sid, ok := sessionIdentity(r)
	if !ok {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	videoID, err := uuid.Parse(chi.URLParam(r, "videoId"))
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrFailedToParseUUID)
		return
	}

	deviceHash := r.Header.Get(config.DeviceHashHeader)
	if deviceHash == "" {
		utils.ErrCodeResponse(
			w, http.StatusUnauthorized, hdl.ErrMissingDeviceHash, hdl.CodeDeviceMismatch,
		)
		return
	}

	key, err := h.ctrl.StreamKey(r.Context(), videoID, uid, sid, deviceHash)
	if err != nil {
		respondValidationErr(w, err)
		return
	}

	utils.RawResponse(w, http.StatusOK, "application/octet-stream", key)
}
