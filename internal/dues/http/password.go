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

type PasswordHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Change Password Endpoint
//	@Description	Change the authenticated user's password. The old password is re-verified before the change is applied.
//	@Tags			Auth
//	@Accept			json
//	@Security		BearerAuth
//	@Success		204	"password changed"
//	@Failure		400	{object}	duesapi.ErrorResponse	"error, error_description"
//	@Failure		401	{object}	duesapi.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	duesapi.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/password [post].
func (h *PasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		duesapi.ErrInvalidCredentials.WriteError(w)
		return
	}

	var req duesapi.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		duesapi.ErrInvalidRequest.WriteError(w)
		return
	}
	if !validPassword(req.NewPassword) {
		duesapi.NewAPIError(http.StatusBadRequest, duesapi.ErrorCodeInvalidRequest,
			"new password must be between 8 and 128 characters").WriteError(w)
		return
	}

	if err := h.UserService.ChangePassword(ctx, userID, req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			duesapi.ErrInvalidCredentials.WriteError(w)
		default:
			log.Error("failed to change password", "err", err)
			duesapi.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
