package duesapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ovalview/hoadues/pkg/httpx"
)

// ============================================================================
// Error Codes
// ============================================================================

const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeAccountDisabled    = "account_disabled"
	ErrorCodeUsernameTaken      = "username_taken"
	ErrorCodeForbidden          = "forbidden"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeInvalidFileType    = "invalid_file_type"
	ErrorCodeFileTooLarge       = "file_too_large"
	ErrorCodeDuplicatePeriod    = "duplicate_period"
	ErrorCodeInvalidTransition  = "invalid_transition"
	ErrorCodeRateLimitExceeded  = "rate_limit_exceeded"
	ErrorCodeServerError        = "server_error"
)

// ============================================================================
// APIError - Standard error envelope
// ============================================================================

// APIError is the error envelope returned by every failing endpoint.
// It implements the error interface and can be used both by the server
// (to write HTTP responses) and by the SDK client (to represent errors).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code (e.g., "duplicate_period")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

// ============================================================================
// Predefined Errors
// ============================================================================

var (
	// ErrInvalidRequest is returned when the request is missing a required
	// parameter, includes an invalid parameter value, or is otherwise
	// malformed.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrInvalidCredentials is returned on any failed login. The body is
	// identical whether the username exists or not.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "invalid username or password",
	}

	// ErrAccountDisabled is returned when the account exists and the password
	// matched but the account has been disabled by an administrator.
	ErrAccountDisabled = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeAccountDisabled,
		Description: "this account has been disabled",
	}

	// ErrUsernameTaken is returned when registering a username that is
	// already in use.
	ErrUsernameTaken = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeUsernameTaken,
		Description: "username is already taken",
	}

	// ErrForbidden is returned when the caller is authenticated but lacks
	// the required role for the operation.
	ErrForbidden = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeForbidden,
		Description: "you do not have permission to perform this action",
	}

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "resource not found",
	}

	// ErrInvalidFileType is returned when the receipt file extension is not
	// on the allow-list.
	ErrInvalidFileType = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidFileType,
		Description: "receipt must be a png, jpg, jpeg or pdf file",
	}

	// ErrFileTooLarge is returned when the receipt file exceeds the upload
	// size limit.
	ErrFileTooLarge = &APIError{
		StatusCode:  http.StatusRequestEntityTooLarge,
		Code:        ErrorCodeFileTooLarge,
		Description: "receipt file exceeds the maximum allowed size",
	}

	// ErrDuplicatePeriod is returned when the user already has a submission
	// for the billing period, regardless of its status.
	ErrDuplicatePeriod = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeDuplicatePeriod,
		Description: "a payment has already been submitted for this period",
	}

	// ErrInvalidTransition is returned when approving or rejecting a payment
	// that is not in the PENDING state.
	ErrInvalidTransition = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeInvalidTransition,
		Description: "payment has already been reviewed",
	}

	// ErrRateLimitExceeded is returned when the caller has exceeded the rate
	// limit for the endpoint.
	ErrRateLimitExceeded = &APIError{
		StatusCode:  http.StatusTooManyRequests,
		Code:        ErrorCodeRateLimitExceeded,
		Description: "too many requests, slow down",
	}

	// ErrServerError is returned when the service encountered an unexpected
	// condition that prevented it from fulfilling the request.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// NewAPIError creates a new APIError with the given status code, error code,
// and description. Useful for custom descriptions on a standard code.
func NewAPIError(statusCode int, code, description string) *APIError {
	return &APIError{
		StatusCode:  statusCode,
		Code:        code,
		Description: description,
	}
}

// ============================================================================
// Error Parsing Helpers
// ============================================================================

// parseErrorResponse attempts to parse an HTTP error response into a typed
// *APIError. Returns nil if the response indicates success (2xx status code).
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
