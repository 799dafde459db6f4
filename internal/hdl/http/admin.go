package http

import (
	"errors"
	"net/http"

	"github.com/JMURv/courseguard/internal/config"
	"github.com/JMURv/courseguard/internal/ctrl"
	"github.com/JMURv/courseguard/internal/dto"
	"github.com/JMURv/courseguard/internal/hdl"
	mid "github.com/JMURv/courseguard/internal/hdl/http/middleware"
	"github.com/JMURv/courseguard/internal/hdl/http/utils"
	md "github.com/JMURv/courseguard/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) RegisterAdminRoutes() {
	h.router.Route(
		"/admin", func(r chi.Router) {
			r.Use(mid.Auth(h.au), mid.AdminOnly)
			r.Get("/sessions", h.listSessions)
			r.Post("/sessions/{id}/kill", h.killSession)
			r.Post("/users", h.createUser)
			r.Post("/users/{id}/reset-device", h.resetDevice)
			r.Get("/users/{id}/security-events", h.listSecurityEvents)
		},
	)
}

// listSessions godoc
//
//	@Summary		List sessions
//	@Description	Paginated session listing with optional is_active filter. Stored flags over-count: expiry is lazy, so a never-validated expired session still reads active.
//	@Tags			Admin
//	@Produce		json
//	@Param			page	query		int		false	"Page number"	default(1)
//	@Param			size	query		int		false	"Page size"		default(40)
//	@Param			is_active	query	bool	false	"Filter by active flag"
//	@Success		200		{object}	dto.PaginatedSessionResponse
//	@Failure		403		{object}	utils.ErrorResponse
//	@Failure		500		{object}	utils.ErrorResponse
//	@Router			/admin/sessions [get]
func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	page, size := utils.ParsePaginationValues(r)
	filters := utils.ParseFiltersByURL(r)

	res, err := h.ctrl.ListSessions(r.Context(), page, size, filters)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// killSession godoc
//
//	@Summary		Terminate a session
//	@Description	Terminates the target session and pushes a kill notice to its live connection, if any
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string					true	"Session ID"
//	@Param			body	body	dto.KillSessionRequest	true	"Termination reason"
//	@Success		200		"Session terminated"
//	@Failure		403		{object}	utils.ErrorResponse
//	@Failure		404		{object}	utils.ErrorResponse
//	@Failure		500		{object}	utils.ErrorResponse
//	@Router			/admin/sessions/{id}/kill [post]
func (h *Handler) killSession(w http.ResponseWriter, r *http.Request) {
	sid, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg)
		return
	}

	req := &dto.KillSessionRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	role, _ := r.Context().Value(config.RoleKey).(md.Role)
	if err = h.ctrl.KillSession(r.Context(), role, sid, req.Reason); err != nil {
		switch {
		case errors.Is(err, ctrl.ErrForbidden):
			utils.ErrResponse(w, http.StatusForbidden, err)
		case errors.Is(err, ctrl.ErrNotFound):
			utils.ErrResponse(w, http.StatusNotFound, err)
		default:
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}
		return
	}

	utils.StatusResponse(w, http.StatusOK)
}

// createUser godoc
//
//	@Summary		Create a user account
//	@Description	Provisions an account with no device binding; the first login starts device verification
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.CreateUserRequest	true	"User data"
//	@Success		201		{object}	dto.CreateUserResponse
//	@Failure		400		{object}	utils.ErrorResponse
//	@Failure		403		{object}	utils.ErrorResponse
//	@Failure		409		{object}	utils.ErrorResponse	"email already registered"
//	@Failure		500		{object}	utils.ErrorResponse
//	@Router			/admin/users [post]
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	req := &dto.CreateUserRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	id, err := h.ctrl.CreateUser(r.Context(), req)
	if err != nil {
		if errors.Is(err, ctrl.ErrAlreadyExists) {
			utils.ErrResponse(w, http.StatusConflict, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, &dto.CreateUserResponse{ID: id})
}

// resetDevice godoc
//
//	@Summary		Reset a user's device binding
//	@Description	Deletes the device row and force-terminates every session of the user
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path	string	true	"User ID"
//	@Success		200	"Device dropped, sessions terminated"
//	@Failure		403	{object}	utils.ErrorResponse
//	@Failure		404	{object}	utils.ErrorResponse
//	@Failure		500	{object}	utils.ErrorResponse
//	@Router			/admin/users/{id}/reset-device [post]
func (h *Handler) resetDevice(w http.ResponseWriter, r *http.Request) {
	uid, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg)
		return
	}

	if err = h.ctrl.ResetDevice(r.Context(), uid); err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, http.StatusOK)
}

// listSecurityEvents godoc
//
//	@Summary		List a user's security events
//	@Tags			Admin
//	@Produce		json
//	@Param			id		path		string	true	"User ID"
//	@Param			page	query		int		false	"Page number"	default(1)
//	@Param			size	query		int		false	"Page size"		default(40)
//	@Param			severity	query	string	false	"Filter by severity"
//	@Success		200		{object}	dto.PaginatedEventResponse
//	@Failure		403		{object}	utils.ErrorResponse
//	@Failure		500		{object}	utils.ErrorResponse
//	@Router			/admin/users/{id}/security-events [get]
func (h *Handler) listSecurityEvents(w http.ResponseWriter, r *http.Request) {
	uid, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg)
		return
	}

	page, size := utils.ParsePaginationValues(r)
	filters := utils.ParseFiltersByURL(r)
	filters["user_id"] = uid

	res, err := h.ctrl.ListSecurityEvents(r.Context(), page, size, filters)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}
