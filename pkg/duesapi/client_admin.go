package duesapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// PaymentFilter narrows admin payment listings. Nil fields are unfiltered.
type PaymentFilter struct {
	Month *int
	Year  *int
}

func (f PaymentFilter) query() string {
	q := url.Values{}
	if f.Month != nil {
		q.Set("month", strconv.Itoa(*f.Month))
	}
	if f.Year != nil {
		q.Set("year", strconv.Itoa(*f.Year))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// ListAllPayments returns submissions across all users, newest first,
// optionally filtered by month and/or year. Requires the admin role.
func (c *Client) ListAllPayments(ctx context.Context, filter PaymentFilter) (*PaymentListResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/admin/payments"+filter.query(), nil, nil)
	if err != nil {
		return nil, err
	}

	var out PaymentListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApprovePayment marks a pending payment as approved. Returns
// ErrInvalidTransition when the payment has already been reviewed.
func (c *Client) ApprovePayment(ctx context.Context, paymentID string) (*PaymentInfo, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/admin/payments/"+paymentID+"/approve", nil)
	if err != nil {
		return nil, err
	}

	var out PaymentInfo
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// RejectPayment marks a pending payment as rejected with an optional reason.
// Returns ErrInvalidTransition when the payment has already been reviewed.
func (c *Client) RejectPayment(ctx context.Context, paymentID, reason string) (*PaymentInfo, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/admin/payments/"+paymentID+"/reject", RejectRequest{
		Reason: reason,
	})
	if err != nil {
		return nil, err
	}

	var out PaymentInfo
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// MonthlyTotal returns the sum of approved payments for a billing period.
func (c *Client) MonthlyTotal(ctx context.Context, month, year int) (*MonthlyTotalResponse, error) {
	q := url.Values{}
	q.Set("month", strconv.Itoa(month))
	q.Set("year", strconv.Itoa(year))

	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/admin/reports/monthly-total?"+q.Encode(), nil, nil)
	if err != nil {
		return nil, err
	}

	var out MonthlyTotalResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUsers returns all user accounts. Requires the admin role.
func (c *Client) ListUsers(ctx context.Context) (*UserListResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/admin/users", nil, nil)
	if err != nil {
		return nil, err
	}

	var out UserListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetUserEnabled enables or disables a user account. Disabling is
// idempotent; a disabled user can no longer log in.
func (c *Client) SetUserEnabled(ctx context.Context, userID string, enabled bool) error {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/admin/users/"+userID+"/enabled", SetEnabledRequest{
		Enabled: enabled,
	})
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}

// Summary returns dashboard counts for the admin overview.
func (c *Client) Summary(ctx context.Context) (*SummaryResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/admin/summary", nil, nil)
	if err != nil {
		return nil, err
	}

	var out SummaryResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
