package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/ovalview/hoadues/pkg/duesapi"
	"github.com/stretchr/testify/require"
)

func TestSubmitPaymentEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	c := ts.homeownerClient(t, "alice")

	t.Run("creates a pending submission", func(t *testing.T) {
		payment, err := c.SubmitPayment(ctx, 3, 2026, "150.00",
			"march.pdf", bytes.NewReader([]byte("march receipt")))
		require.NoError(t, err)

		require.Equal(t, "alice", payment.Username)
		require.Equal(t, duesapi.PaymentStatusPending, payment.Status)
		require.Equal(t, 3, payment.Month)
		require.Equal(t, 2026, payment.Year)
		require.Equal(t, int64(15000), payment.AmountCents)
		require.Equal(t, "150.00", payment.Amount)
	})

	t.Run("duplicate period", func(t *testing.T) {
		_, err := c.SubmitPayment(ctx, 3, 2026, "150.00",
			"march-again.pdf", bytes.NewReader([]byte("x")))
		requireAPIError(t, err, http.StatusConflict, duesapi.ErrorCodeDuplicatePeriod)
	})

	t.Run("invalid file type", func(t *testing.T) {
		_, err := c.SubmitPayment(ctx, 4, 2026, "150.00",
			"receipt.exe", bytes.NewReader([]byte("x")))
		requireAPIError(t, err, http.StatusBadRequest, duesapi.ErrorCodeInvalidFileType)
	})

	t.Run("invalid period", func(t *testing.T) {
		_, err := c.SubmitPayment(ctx, 13, 2026, "150.00",
			"receipt.pdf", bytes.NewReader([]byte("x")))
		requireAPIError(t, err, http.StatusBadRequest, duesapi.ErrorCodeInvalidRequest)
	})

	t.Run("invalid amount", func(t *testing.T) {
		_, err := c.SubmitPayment(ctx, 4, 2026, "-150.00",
			"receipt.pdf", bytes.NewReader([]byte("x")))
		requireAPIError(t, err, http.StatusBadRequest, duesapi.ErrorCodeInvalidRequest)

		_, err = c.SubmitPayment(ctx, 4, 2026, "abc",
			"receipt.pdf", bytes.NewReader([]byte("x")))
		requireAPIError(t, err, http.StatusBadRequest, duesapi.ErrorCodeInvalidRequest)
	})

	t.Run("requires authentication", func(t *testing.T) {
		anon := ts.client()
		_, err := anon.SubmitPayment(ctx, 5, 2026, "150.00",
			"receipt.pdf", bytes.NewReader([]byte("x")))
		require.Error(t, err)
	})
}

func TestPaymentHistoryAndStatusEndpoints(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	alice := ts.homeownerClient(t, "alice")
	bob := ts.homeownerClient(t, "bob")

	t.Run("empty history and NO_PAYMENT before any submission", func(t *testing.T) {
		history, err := alice.ListPayments(ctx)
		require.NoError(t, err)
		require.Empty(t, history.Payments)

		status, err := alice.GetPaymentStatus(ctx)
		require.NoError(t, err)
		require.Equal(t, duesapi.StatusNoPayment, status.Status)
		require.Nil(t, status.Payment)
	})

	_, err := alice.SubmitPayment(ctx, 1, 2026, "150.00", "jan.pdf", bytes.NewReader([]byte("jan")))
	require.NoError(t, err)
	_, err = alice.SubmitPayment(ctx, 2, 2026, "150.00", "feb.pdf", bytes.NewReader([]byte("feb")))
	require.NoError(t, err)
	_, err = bob.SubmitPayment(ctx, 2, 2026, "120.00", "bob-feb.pdf", bytes.NewReader([]byte("bob")))
	require.NoError(t, err)

	t.Run("history is the caller's own, newest first", func(t *testing.T) {
		history, err := alice.ListPayments(ctx)
		require.NoError(t, err)
		require.Len(t, history.Payments, 2)
		require.Equal(t, 2, history.Payments[0].Month)
		require.Equal(t, 1, history.Payments[1].Month)
		for _, p := range history.Payments {
			require.Equal(t, "alice", p.Username)
		}
	})

	t.Run("status reflects the latest submission", func(t *testing.T) {
		status, err := alice.GetPaymentStatus(ctx)
		require.NoError(t, err)
		require.Equal(t, duesapi.PaymentStatusPending, status.Status)
		require.NotNil(t, status.Payment)
		require.Equal(t, 2, status.Payment.Month)
	})
}

func TestReceiptDownloadEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	alice := ts.homeownerClient(t, "alice")
	bob := ts.homeownerClient(t, "bob")
	admin := ts.adminClient(t)

	payment, err := alice.SubmitPayment(ctx, 1, 2026, "150.00",
		"jan.pdf", bytes.NewReader([]byte("receipt content")))
	require.NoError(t, err)

	t.Run("owner can download", func(t *testing.T) {
		rc, err := alice.DownloadReceipt(ctx, payment.ID)
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.Equal(t, []byte("receipt content"), data)
	})

	t.Run("admin can download any receipt", func(t *testing.T) {
		rc, err := admin.DownloadReceipt(ctx, payment.ID)
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.Equal(t, []byte("receipt content"), data)
	})

	t.Run("another homeowner sees not_found", func(t *testing.T) {
		_, err := bob.DownloadReceipt(ctx, payment.ID)
		requireAPIError(t, err, http.StatusNotFound, duesapi.ErrorCodeNotFound)
	})

	t.Run("unknown payment", func(t *testing.T) {
		_, err := alice.DownloadReceipt(ctx, "missing-id")
		requireAPIError(t, err, http.StatusNotFound, duesapi.ErrorCodeNotFound)
	})
}
