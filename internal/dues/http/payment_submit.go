package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/ovalview/hoadues/internal/dues/domain"
	"github.com/ovalview/hoadues/internal/dues/service"
	"github.com/ovalview/hoadues/pkg/duesapi"
	"github.com/ovalview/hoadues/pkg/httpx"
	"github.com/ovalview/hoadues/pkg/slogx"
)

// multipartOverhead covers form field boundaries and headers on top of the
// receipt size limit when capping the whole request body.
const multipartOverhead = 64 << 10

type SubmitHandler struct {
	UploadService *service.UploadService
}

// ServeHTTP godoc
//
//	@Summary		Submit Payment Endpoint
//	@Description	Submit a dues payment for a billing period as multipart form data with fields month, year, amount and a receipt file (png, jpg, jpeg or pdf, max 5 MiB).
//	@Description	One submission per period per user, regardless of its review status.
//	@Tags			Payments
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			month	formData	int						true	"Billing month (1-12)"
//	@Param			year	formData	int						true	"Billing year"
//	@Param			amount	formData	string					true	"Amount as a decimal string, e.g. 150.00"
//	@Param			receipt	formData	file					true	"Receipt file"
//	@Success		201		{object}	duesapi.PaymentInfo		"created submission"
//	@Failure		400		{object}	duesapi.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	duesapi.ErrorResponse	"error, error_description"
//	@Failure		413		{object}	duesapi.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	duesapi.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/payments [post].
func (h *SubmitHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	username := httpx.UsernameFromContext(ctx)
	if username == "" {
		duesapi.ErrInvalidCredentials.WriteError(w)
		return
	}

	// Cap the whole body; an oversized receipt fails here before any of it
	// is buffered in memory.
	r.Body = http.MaxBytesReader(w, r.Body, service.MaxReceiptBytes+multipartOverhead)
	if err := r.ParseMultipartForm(service.MaxReceiptBytes + multipartOverhead); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			duesapi.ErrFileTooLarge.WriteError(w)
			return
		}
		duesapi.ErrInvalidRequest.WriteError(w)
		return
	}

	period, err := domain.ParsePeriod(r.FormValue("month"), r.FormValue("year"))
	if err != nil {
		duesapi.NewAPIError(http.StatusBadRequest, duesapi.ErrorCodeInvalidRequest,
			"month must be 1-12 and year a valid four digit year").WriteError(w)
		return
	}

	amountCents, err := domain.ParseAmountCents(r.FormValue("amount"))
	if err != nil {
		duesapi.NewAPIError(http.StatusBadRequest, duesapi.ErrorCodeInvalidRequest,
			"amount must be a positive decimal value, e.g. 150.00").WriteError(w)
		return
	}

	file, header, err := r.FormFile("receipt")
	if err != nil {
		duesapi.NewAPIError(http.StatusBadRequest, duesapi.ErrorCodeInvalidRequest,
			"receipt file is required").WriteError(w)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error("failed to read receipt upload", "err", err)
		duesapi.ErrServerError.WriteError(w)
		return
	}

	payment, err := h.UploadService.HandleUpload(ctx, username, period, amountCents, data, header.Filename)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidFileType):
			duesapi.ErrInvalidFileType.WriteError(w)
		case errors.Is(err, service.ErrFileTooLarge):
			duesapi.ErrFileTooLarge.WriteError(w)
		case errors.Is(err, service.ErrDuplicatePeriod):
			duesapi.ErrDuplicatePeriod.WriteError(w)
		default:
			log.Error("failed to submit payment", "err", err)
			duesapi.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, paymentInfo(payment))
}
