package http

import (
	"net/http"

	"github.com/ovalview/hoadues/internal/dues/service"
	"github.com/ovalview/hoadues/pkg/duesapi"
	"github.com/ovalview/hoadues/pkg/httpx"
	"github.com/ovalview/hoadues/pkg/slogx"
)

type SummaryHandler struct {
	LedgerService *service.LedgerService
}

// ServeHTTP godoc
//
//	@Summary		Dashboard Summary Endpoint
//	@Description	Report the admin dashboard counters: total users, total payments and pending submissions.
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	duesapi.SummaryResponse	"total_users, total_payments, pending_count"
//	@Failure		403	{object}	duesapi.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	duesapi.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/admin/summary [get].
func (h *SummaryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	summary, err := h.LedgerService.Summary(ctx)
	if err != nil {
		log.Error("failed to build summary", "err", err)
		duesapi.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, duesapi.SummaryResponse{
		TotalUsers:    summary.TotalUsers,
		TotalPayments: summary.TotalPayments,
		PendingCount:  summary.PendingCount,
	})
}
