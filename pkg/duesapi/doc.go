/*
Package duesapi provides the wire types and a client SDK for the HOA dues
service.

# Overview

The package has two halves. The type half (types.go, errors.go) defines the
JSON request/response shapes and the error envelope shared by the HTTP
handlers and any consumer of the API. The client half wraps them in a small
HTTP client:

	client := duesapi.NewClient("http://localhost:8080")

	// Public endpoints
	_, err := client.Register(ctx, "alice", "s3cret-pass")
	tok, err := client.Login(ctx, "alice", "s3cret-pass")

	// Authenticated endpoints
	client.Authorize(tok.AccessToken)
	payments, err := client.ListPayments(ctx)

Errors returned by the service are surfaced as *APIError values carrying the
HTTP status and the machine-readable error code, so callers can branch on
them:

	var apiErr *duesapi.APIError
	if errors.As(err, &apiErr) && apiErr.Code == duesapi.ErrorCodeDuplicatePeriod {
		// already submitted for that month
	}
*/
package duesapi
