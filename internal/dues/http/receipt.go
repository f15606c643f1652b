package http

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/ovalview/hoadues/internal/dues/blob"
	"github.com/ovalview/hoadues/internal/dues/domain"
	"github.com/ovalview/hoadues/internal/dues/service"
	"github.com/ovalview/hoadues/pkg/duesapi"
	"github.com/ovalview/hoadues/pkg/httpx"
	"github.com/ovalview/hoadues/pkg/slogx"
)

type ReceiptHandler struct {
	LedgerService *service.LedgerService
	Blobs         *blob.Store
}

// ServeHTTP godoc
//
//	@Summary		Receipt Download Endpoint
//	@Description	Download the stored receipt file for a payment. Homeowners may fetch their own receipts, admins any.
//	@Tags			Payments
//	@Produce		octet-stream
//	@Param			id	path		string					true	"Payment ID"
//	@Success		200	{file}		binary					"receipt file"
//	@Failure		401	{object}	duesapi.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	duesapi.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	duesapi.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/payments/{id}/receipt [get].
func (h *ReceiptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	username := httpx.UsernameFromContext(ctx)
	if username == "" {
		duesapi.ErrInvalidCredentials.WriteError(w)
		return
	}

	payment, err := h.LedgerService.GetPaymentByID(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			duesapi.ErrNotFound.WriteError(w)
			return
		}
		log.Error("failed to load payment", "err", err)
		duesapi.ErrServerError.WriteError(w)
		return
	}

	// Ownership check for non-admins. A foreign payment reads as absent so
	// the response doesn't confirm another user's submission exists.
	if httpx.RoleFromContext(ctx) != domain.RoleAdmin && payment.Username != username {
		duesapi.ErrNotFound.WriteError(w)
		return
	}

	rc, err := h.Blobs.Open(payment.ReceiptName)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			duesapi.ErrNotFound.WriteError(w)
			return
		}
		log.Error("failed to open receipt", "receipt", payment.ReceiptName, "err", err)
		duesapi.ErrServerError.WriteError(w)
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(filepath.Ext(payment.ReceiptName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+payment.ReceiptName+`"`)
	if _, err := io.Copy(w, rc); err != nil {
		log.Warn("receipt download interrupted", "receipt", payment.ReceiptName, "err", err)
	}
}
