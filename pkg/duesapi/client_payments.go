package duesapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
)

// SubmitPayment uploads a dues payment receipt for a billing period.
// The amount is a decimal string (e.g., "150.00"). Returns
// ErrDuplicatePeriod when a submission already exists for the period,
// ErrInvalidFileType for a disallowed extension and ErrFileTooLarge when
// the receipt exceeds the size limit.
func (c *Client) SubmitPayment(
	ctx context.Context,
	month, year int,
	amount string,
	receiptName string,
	receipt io.Reader,
) (*PaymentInfo, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if err := mw.WriteField("month", strconv.Itoa(month)); err != nil {
		return nil, fmt.Errorf("failed to write form field: %w", err)
	}
	if err := mw.WriteField("year", strconv.Itoa(year)); err != nil {
		return nil, fmt.Errorf("failed to write form field: %w", err)
	}
	if err := mw.WriteField("amount", amount); err != nil {
		return nil, fmt.Errorf("failed to write form field: %w", err)
	}

	fw, err := mw.CreateFormFile("receipt", receiptName)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(fw, receipt); err != nil {
		return nil, fmt.Errorf("failed to write receipt: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/payments", &buf, map[string]string{
		"Content-Type": mw.FormDataContentType(),
	})
	if err != nil {
		return nil, err
	}

	var out PaymentInfo
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPayments returns the authenticated user's submissions, newest first.
func (c *Client) ListPayments(ctx context.Context) (*PaymentListResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/payments", nil, nil)
	if err != nil {
		return nil, err
	}

	var out PaymentListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPaymentStatus returns the status of the user's latest submission, or
// StatusNoPayment when the user has never submitted.
func (c *Client) GetPaymentStatus(ctx context.Context) (*PaymentStatusResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/payments/status", nil, nil)
	if err != nil {
		return nil, err
	}

	var out PaymentStatusResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DownloadReceipt fetches the stored receipt file for a payment. Homeowners
// may fetch their own receipts; admins may fetch any. The caller must close
// the returned reader.
func (c *Client) DownloadReceipt(ctx context.Context, paymentID string) (io.ReadCloser, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/payments/"+paymentID+"/receipt", nil, nil)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, parseErrorResponse(resp, bodyBytes)
	}

	return resp.Body, nil
}
