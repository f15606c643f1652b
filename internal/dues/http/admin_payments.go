package http

import (
	"net/http"
	"strconv"

	"github.com/ovalview/hoadues/internal/dues/domain"
	"github.com/ovalview/hoadues/internal/dues/service"
	"github.com/ovalview/hoadues/pkg/duesapi"
	"github.com/ovalview/hoadues/pkg/httpx"
	"github.com/ovalview/hoadues/pkg/slogx"
)

type AdminPaymentsHandler struct {
	LedgerService *service.LedgerService
}

// ServeHTTP godoc
//
//	@Summary		Admin Payment Listing Endpoint
//	@Description	List dues submissions across all users, newest first. The month and year query parameters narrow the result independently.
//	@Tags			Admin
//	@Produce		json
//	@Param			month	query		int							false	"Billing month (1-12)"
//	@Param			year	query		int							false	"Billing year"
//	@Success		200		{object}	duesapi.PaymentListResponse	"payments"
//	@Failure		400		{object}	duesapi.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	duesapi.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	duesapi.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/admin/payments [get].
func (h *AdminPaymentsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	filter, ok := parsePaymentFilter(w, r)
	if !ok {
		return
	}

	payments, err := h.LedgerService.ListFiltered(ctx, filter)
	if err != nil {
		log.Error("failed to list payments", "err", err)
		duesapi.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, paymentList(payments))
}

// parsePaymentFilter reads the optional month and year query parameters.
// On a malformed value it writes the error response and returns ok=false.
func parsePaymentFilter(w http.ResponseWriter, r *http.Request) (domain.PaymentFilter, bool) {
	var filter domain.PaymentFilter

	if raw := r.URL.Query().Get("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			duesapi.NewAPIError(http.StatusBadRequest, duesapi.ErrorCodeInvalidRequest,
				"month must be an integer between 1 and 12").WriteError(w)
			return domain.PaymentFilter{}, false
		}
		filter.Month = &month
	}

	if raw := r.URL.Query().Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			duesapi.NewAPIError(http.StatusBadRequest, duesapi.ErrorCodeInvalidRequest,
				"year must be an integer").WriteError(w)
			return domain.PaymentFilter{}, false
		}
		filter.Year = &year
	}

	return filter, true
}
