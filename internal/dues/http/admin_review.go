package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/ovalview/hoadues/internal/dues/service"
	"github.com/ovalview/hoadues/pkg/duesapi"
	"github.com/ovalview/hoadues/pkg/httpx"
	"github.com/ovalview/hoadues/pkg/slogx"
)

type ReviewHandler struct {
	LedgerService *service.LedgerService
}

// HandleApprove godoc
//
//	@Summary		Approve Payment Endpoint
//	@Description	Approve a pending submission. Submissions already reviewed return invalid_transition so a concurrent review surfaces to the second admin.
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		string					true	"Payment ID"
//	@Success		200	{object}	duesapi.PaymentInfo		"updated submission"
//	@Failure		403	{object}	duesapi.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	duesapi.ErrorResponse	"error, error_description"
//	@Failure		409	{object}	duesapi.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	duesapi.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/admin/payments/{id}/approve [post].
func (h *ReviewHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	paymentID := r.PathValue("id")
	h.finishReview(w, r, paymentID, h.LedgerService.Approve(r.Context(), paymentID))
}

// HandleReject godoc
//
//	@Summary		Reject Payment Endpoint
//	@Description	Reject a pending submission with an optional reason shown to the homeowner.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Payment ID"
//	@Param			request	body		duesapi.RejectRequest	false	"Reject request"
//	@Success		200		{object}	duesapi.PaymentInfo		"updated submission"
//	@Failure		403		{object}	duesapi.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	duesapi.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	duesapi.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	duesapi.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/admin/payments/{id}/reject [post].
func (h *ReviewHandler) HandleReject(w http.ResponseWriter, r *http.Request) {
	// The body is optional; an empty or absent body rejects without a reason.
	var req duesapi.RejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		duesapi.ErrInvalidRequest.WriteError(w)
		return
	}

	paymentID := r.PathValue("id")
	h.finishReview(w, r, paymentID, h.LedgerService.Reject(r.Context(), paymentID, req.Reason))
}

// finishReview maps the review outcome to a response, rereading the record
// on success so the caller sees the final state.
func (h *ReviewHandler) finishReview(w http.ResponseWriter, r *http.Request, paymentID string, reviewErr error) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if reviewErr != nil {
		switch {
		case errors.Is(reviewErr, service.ErrNotFound):
			duesapi.ErrNotFound.WriteError(w)
		case errors.Is(reviewErr, service.ErrInvalidTransition):
			duesapi.ErrInvalidTransition.WriteError(w)
		default:
			log.Error("failed to review payment", "payment_id", paymentID, "err", reviewErr)
			duesapi.ErrServerError.WriteError(w)
		}
		return
	}

	payment, err := h.LedgerService.GetPaymentByID(ctx, paymentID)
	if err != nil {
		log.Error("failed to reload reviewed payment", "payment_id", paymentID, "err", err)
		duesapi.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, paymentInfo(payment))
}
