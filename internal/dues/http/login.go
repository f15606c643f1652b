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

type LoginHandler struct {
	UserService    *service.UserService
	SessionService *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Authenticate with username and password and receive a bearer token.
//	@Description	Failed logins return an identical body whether the username exists or not.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		duesapi.LoginRequest	true	"Login request"
//	@Success		200		{object}	duesapi.TokenResponse	"access_token, token_type, expires_in"
//	@Failure		401		{object}	duesapi.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	duesapi.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	duesapi.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req duesapi.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		duesapi.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.Username == "" || req.Password == "" {
		// Same body as a failed verification so the response never reveals
		// which part was wrong.
		duesapi.ErrInvalidCredentials.WriteError(w)
		return
	}

	user, err := h.UserService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			duesapi.ErrInvalidCredentials.WriteError(w)
		case errors.Is(err, service.ErrAccountDisabled):
			duesapi.ErrAccountDisabled.WriteError(w)
		default:
			log.Error("failed to authenticate user", "err", err)
			duesapi.ErrServerError.WriteError(w)
		}
		return
	}

	token, err := h.SessionService.Issue(ctx, user)
	if err != nil {
		log.Error("failed to issue access token", "err", err)
		duesapi.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, duesapi.TokenResponse{
		AccessToken: token.Token,
		TokenType:   "Bearer",
		ExpiresIn:   int(token.ExpiresIn.Seconds()),
	})
}
