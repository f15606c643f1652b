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

type RegisterHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Register Endpoint
//	@Description	Create a new homeowner account. Usernames are 3-32 chars of alphanumerics, underscore or hyphen; passwords 8-128 chars.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		duesapi.RegisterRequest		true	"Registration request"
//	@Success		201		{object}	duesapi.RegisterResponse	"user_id, username"
//	@Failure		400		{object}	duesapi.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	duesapi.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	duesapi.ErrorResponse		"error, error_description"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req duesapi.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		duesapi.ErrInvalidRequest.WriteError(w)
		return
	}

	if !validUsername(req.Username) {
		duesapi.NewAPIError(http.StatusBadRequest, duesapi.ErrorCodeInvalidRequest,
			"username must be 3-32 characters of letters, digits, underscore or hyphen").WriteError(w)
		return
	}
	if !validPassword(req.Password) {
		duesapi.NewAPIError(http.StatusBadRequest, duesapi.ErrorCodeInvalidRequest,
			"password must be between 8 and 128 characters").WriteError(w)
		return
	}

	user, err := h.UserService.Register(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			duesapi.ErrUsernameTaken.WriteError(w)
		default:
			log.Error("failed to register user", "err", err)
			duesapi.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, duesapi.RegisterResponse{
		UserID:   user.ID,
		Username: user.Username,
	})
}
