package http

import (
	"errors"
	"net/http"

	"github.com/ovalview/hoadues/internal/dues/service"
	"github.com/ovalview/hoadues/pkg/duesapi"
	"github.com/ovalview/hoadues/pkg/httpx"
	"github.com/ovalview/hoadues/pkg/slogx"
)

type PaymentStatusHandler struct {
	LedgerService *service.LedgerService
}

// ServeHTTP godoc
//
//	@Summary		Payment Status Endpoint
//	@Description	Report the status of the authenticated user's most recent submission, or NO_PAYMENT when nothing has been submitted yet.
//	@Tags			Payments
//	@Produce		json
//	@Success		200	{object}	duesapi.PaymentStatusResponse	"status, payment"
//	@Failure		401	{object}	duesapi.ErrorResponse			"error, error_description"
//	@Failure		500	{object}	duesapi.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/payments/status [get].
func (h *PaymentStatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	username := httpx.UsernameFromContext(ctx)
	if username == "" {
		duesapi.ErrInvalidCredentials.WriteError(w)
		return
	}

	latest, err := h.LedgerService.LatestStatus(ctx, username)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			httpx.WriteJSON(w, http.StatusOK, duesapi.PaymentStatusResponse{
				Status: duesapi.StatusNoPayment,
			})
			return
		}
		log.Error("failed to load latest payment", "err", err)
		duesapi.ErrServerError.WriteError(w)
		return
	}

	info := paymentInfo(latest)
	httpx.WriteJSON(w, http.StatusOK, duesapi.PaymentStatusResponse{
		Status:  latest.Status,
		Payment: &info,
	})
}
