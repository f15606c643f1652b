package duesapi

import (
	"context"
	"net/http"
)

// Register creates a new homeowner account.
// Returns ErrUsernameTaken when the username is already in use.
func (c *Client) Register(ctx context.Context, username, password string) (*RegisterResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/register", RegisterRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var out RegisterResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates and returns a bearer token. The error body is
// identical for unknown usernames and wrong passwords.
func (c *Client) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/login", LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var out TokenResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword changes the authenticated user's password. The old
// password is re-verified server side.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/password", ChangePasswordRequest{
		OldPassword: oldPassword,
		NewPassword: newPassword,
	})
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}
