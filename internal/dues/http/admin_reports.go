package http

import (
	"net/http"

	"github.com/ovalview/hoadues/internal/dues/domain"
	"github.com/ovalview/hoadues/internal/dues/service"
	"github.com/ovalview/hoadues/pkg/duesapi"
	"github.com/ovalview/hoadues/pkg/httpx"
	"github.com/ovalview/hoadues/pkg/slogx"
)

type ReportsHandler struct {
	LedgerService *service.LedgerService
}

// HandleMonthlyTotal godoc
//
//	@Summary		Monthly Total Report Endpoint
//	@Description	Report the sum of approved dues payments for a billing period. Zero when no approved payments exist for the period.
//	@Tags			Admin
//	@Produce		json
//	@Param			month	query		int								true	"Billing month (1-12)"
//	@Param			year	query		int								true	"Billing year"
//	@Success		200		{object}	duesapi.MonthlyTotalResponse	"month, year, total_cents, total"
//	@Failure		400		{object}	duesapi.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	duesapi.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	duesapi.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/admin/reports/monthly-total [get].
func (h *ReportsHandler) HandleMonthlyTotal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	q := r.URL.Query()
	period, err := domain.ParsePeriod(q.Get("month"), q.Get("year"))
	if err != nil {
		duesapi.NewAPIError(http.StatusBadRequest, duesapi.ErrorCodeInvalidRequest,
			"month and year query parameters are required; month must be 1-12").WriteError(w)
		return
	}

	total, err := h.LedgerService.MonthlyApprovedTotal(ctx, period)
	if err != nil {
		log.Error("failed to compute monthly total", "period", period.String(), "err", err)
		duesapi.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, duesapi.MonthlyTotalResponse{
		Month:      period.Month,
		Year:       period.Year,
		TotalCents: total,
		Total:      domain.FormatAmountCents(total),
	})
}
