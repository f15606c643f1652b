package service

import (
	"context"
	"errors"

	"github.com/ovalview/hoadues/internal/dues/store"
)

// Guard performs role checks against the credential store. It only ever
// receives a user ID coming from a verified token, never a raw
// client-supplied username.
type Guard struct {
	Store store.Store
}

// RequireRole returns nil when the user exists and holds the required role.
// A missing user maps to ErrNotFound, a role mismatch (or disabled account)
// to ErrForbidden.
func (g *Guard) RequireRole(ctx context.Context, userID, requiredRole string) error {
	user, err := g.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !user.Enabled || user.Role != requiredRole {
		return ErrForbidden
	}

	return nil
}
