package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ovalview/hoadues/internal/dues/service"
	"github.com/ovalview/hoadues/pkg/duesapi"
	"github.com/ovalview/hoadues/pkg/httpx"
	"github.com/ovalview/hoadues/pkg/slogx"
)

type AdminUsersHandler struct {
	UserService *service.UserService
}

// HandleList godoc
//
//	@Summary		User Listing Endpoint
//	@Description	List all user accounts with their role and enabled flag. Password hashes are never included.
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	duesapi.UserListResponse	"users"
//	@Failure		403	{object}	duesapi.ErrorResponse		"error, error_description"
//	@Failure		500	{object}	duesapi.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/admin/users [get].
func (h *AdminUsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	users, err := h.UserService.ListUsers(ctx)
	if err != nil {
		log.Error("failed to list users", "err", err)
		duesapi.ErrServerError.WriteError(w)
		return
	}

	out := duesapi.UserListResponse{
		Users: make([]duesapi.UserInfo, 0, len(users)),
	}
	for _, u := range users {
		out.Users = append(out.Users, userInfo(u))
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleSetEnabled godoc
//
//	@Summary		User Enable/Disable Endpoint
//	@Description	Enable or disable a user account. Disabling is idempotent; a disabled user can no longer log in.
//	@Tags			Admin
//	@Accept			json
//	@Param			id		path		string						true	"User ID"
//	@Param			request	body		duesapi.SetEnabledRequest	true	"Enabled flag"
//	@Success		204		"flag updated"
//	@Failure		400		{object}	duesapi.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	duesapi.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	duesapi.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	duesapi.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/admin/users/{id}/enabled [post].
func (h *AdminUsersHandler) HandleSetEnabled(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req duesapi.SetEnabledRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		duesapi.ErrInvalidRequest.WriteError(w)
		return
	}

	userID := r.PathValue("id")

	// Admins cannot disable themselves; the last admin locking everyone out
	// is not a recoverable state.
	if !req.Enabled && userID == httpx.UserIDFromContext(ctx) {
		duesapi.NewAPIError(http.StatusBadRequest, duesapi.ErrorCodeInvalidRequest,
			"you cannot disable your own account").WriteError(w)
		return
	}

	if err := h.UserService.SetEnabled(ctx, userID, req.Enabled); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			duesapi.ErrNotFound.WriteError(w)
		default:
			log.Error("failed to update enabled flag", "user_id", userID, "err", err)
			duesapi.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
