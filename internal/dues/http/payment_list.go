package http

import (
	"net/http"

	"github.com/ovalview/hoadues/internal/dues/service"
	"github.com/ovalview/hoadues/pkg/duesapi"
	"github.com/ovalview/hoadues/pkg/httpx"
	"github.com/ovalview/hoadues/pkg/slogx"
)

type PaymentListHandler struct {
	LedgerService *service.LedgerService
}

// ServeHTTP godoc
//
//	@Summary		Payment History Endpoint
//	@Description	List the authenticated user's dues submissions, newest first.
//	@Tags			Payments
//	@Produce		json
//	@Success		200	{object}	duesapi.PaymentListResponse	"payments"
//	@Failure		401	{object}	duesapi.ErrorResponse		"error, error_description"
//	@Failure		500	{object}	duesapi.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/payments [get].
func (h *PaymentListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	username := httpx.UsernameFromContext(ctx)
	if username == "" {
		duesapi.ErrInvalidCredentials.WriteError(w)
		return
	}

	payments, err := h.LedgerService.ListForUser(ctx, username)
	if err != nil {
		log.Error("failed to list payments", "err", err)
		duesapi.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, paymentList(payments))
}
