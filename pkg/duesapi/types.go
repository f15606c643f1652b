package duesapi

import "time"

// ============================================================================
// Internal Response Types (used for JSON unmarshaling)
// ============================================================================

// ErrorResponse is the standard error envelope returned by failing endpoints.
// This is used internally for parsing HTTP error responses. Client code
// should use the APIError type from errors.go instead.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g., "duplicate_period")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Auth Types
// ============================================================================

// RegisterRequest is the body for POST /v1/auth/register.
type RegisterRequest struct {
	// Username is the login name for the new homeowner account (3-32 chars)
	Username string `json:"username"`

	// Password is the plaintext password (8-128 chars)
	Password string `json:"password"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	// UserID is the unique identifier of the created user
	UserID string `json:"user_id"`

	// Username echoes the registered username
	Username string `json:"username"`
}

// LoginRequest is the body for POST /v1/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is returned from a successful login.
type TokenResponse struct {
	// AccessToken is the JWT bearer token used to authenticate API requests
	AccessToken string `json:"access_token"`

	// TokenType is always "Bearer"
	TokenType string `json:"token_type"`

	// ExpiresIn is the lifetime in seconds of the access token
	ExpiresIn int `json:"expires_in"`
}

// ChangePasswordRequest is the body for POST /v1/auth/password.
type ChangePasswordRequest struct {
	// OldPassword is the caller's current password, re-verified server side
	OldPassword string `json:"old_password"`

	// NewPassword is the replacement password (8-128 chars)
	NewPassword string `json:"new_password"`
}

// ============================================================================
// Payment Types
// ============================================================================

// PaymentStatus values as they appear on the wire.
const (
	PaymentStatusPending  = "PENDING"
	PaymentStatusApproved = "APPROVED"
	PaymentStatusRejected = "REJECTED"

	// StatusNoPayment is reported by the status endpoint when the user has
	// never submitted a payment.
	StatusNoPayment = "NO_PAYMENT"
)

// PaymentInfo describes a single dues submission.
type PaymentInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`

	// Month and Year identify the billing period
	Month int `json:"month"`
	Year  int `json:"year"`

	// AmountCents is the submitted amount in integer cents
	AmountCents int64 `json:"amount_cents"`

	// Amount is the same value formatted as a decimal string (e.g., "150.00")
	Amount string `json:"amount"`

	// Status is one of PENDING, APPROVED or REJECTED
	Status string `json:"status"`

	// RejectReason is set only when Status is REJECTED and a reason was given
	RejectReason string `json:"reject_reason,omitempty"`

	// ReceiptName is the stored receipt file name
	ReceiptName string `json:"receipt_name"`

	UploadedAt time.Time `json:"uploaded_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PaymentListResponse wraps a list of payments.
type PaymentListResponse struct {
	Payments []PaymentInfo `json:"payments"`
}

// PaymentStatusResponse is returned from GET /v1/payments/status.
type PaymentStatusResponse struct {
	// Status is the latest submission's status, or NO_PAYMENT when the user
	// has never submitted
	Status string `json:"status"`

	// Payment carries the latest submission when one exists
	Payment *PaymentInfo `json:"payment,omitempty"`
}

// RejectRequest is the body for POST /v1/admin/payments/{id}/reject.
type RejectRequest struct {
	// Reason is an optional explanation shown to the homeowner
	Reason string `json:"reason,omitempty"`
}

// ============================================================================
// Report Types
// ============================================================================

// MonthlyTotalResponse is returned from GET /v1/admin/reports/monthly-total.
type MonthlyTotalResponse struct {
	Month int `json:"month"`
	Year  int `json:"year"`

	// TotalCents is the sum of approved payment amounts for the period in
	// integer cents; zero when there are no approved payments
	TotalCents int64 `json:"total_cents"`

	// Total is TotalCents formatted as a decimal string (e.g., "450.00")
	Total string `json:"total"`
}

// SummaryResponse is returned from GET /v1/admin/summary.
type SummaryResponse struct {
	TotalUsers    int64 `json:"total_users"`
	TotalPayments int64 `json:"total_payments"`
	PendingCount  int64 `json:"pending_count"`
}

// ============================================================================
// User Admin Types
// ============================================================================

// UserInfo describes a user account in admin listings.
type UserInfo struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
}

// UserListResponse wraps a list of user accounts.
type UserListResponse struct {
	Users []UserInfo `json:"users"`
}

// SetEnabledRequest is the body for POST /v1/admin/users/{id}/enabled.
type SetEnabledRequest struct {
	Enabled bool `json:"enabled"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned from the /livez and /readyz endpoints.
type HealthResponse struct {
	// Status is "ok" when the check passes
	Status string `json:"status"`

	// Version is the service build version
	Version string `json:"version,omitempty"`

	// Uptime is the service uptime as a duration string
	Uptime string `json:"uptime,omitempty"`
}
