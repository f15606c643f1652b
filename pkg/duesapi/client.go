package duesapi

import (
	"net/http"
	"strings"
	"time"
)

// Client is a client for the HOA dues service. Public endpoints work
// immediately; call Authorize with a bearer token before using the
// authenticated endpoints.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	token string
}

// NewClient creates a new dues service client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Authorize sets the bearer token used for authenticated requests.
// Pass an empty string to clear it.
func (c *Client) Authorize(token string) {
	c.token = token
}
