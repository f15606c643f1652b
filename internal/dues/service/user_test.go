package service

import (
	"context"
	"testing"

	"github.com/ovalview/hoadues/internal/dues/domain"
	"github.com/stretchr/testify/require"
)

func TestUserServiceRegister(t *testing.T) {
	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	t.Run("creates an enabled homeowner", func(t *testing.T) {
		user, err := svc.Register(ctx, "alice", "correct-horse-battery")
		require.NoError(t, err)
		require.NotEmpty(t, user.ID)
		require.Equal(t, "alice", user.Username)
		require.Equal(t, domain.RoleHomeowner, user.Role)
		require.True(t, user.Enabled)
		require.NotEqual(t, "correct-horse-battery", user.PasswordHash)
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, "alice", "another-password")
		require.ErrorIs(t, err, ErrUsernameTaken)
	})
}

func TestUserServiceAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	registered, err := svc.Register(ctx, "bob", "bobs-secret-pass")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "bob", "bobs-secret-pass")
		require.NoError(t, err)
		require.Equal(t, registered.ID, user.ID)
	})

	t.Run("wrong password and unknown user return the same error", func(t *testing.T) {
		_, wrongPass := svc.Authenticate(ctx, "bob", "not-the-password")
		_, noUser := svc.Authenticate(ctx, "nobody", "whatever-pass")

		require.ErrorIs(t, wrongPass, ErrInvalidCredentials)
		require.ErrorIs(t, noUser, ErrInvalidCredentials)
	})

	t.Run("disabled account is rejected after the password check", func(t *testing.T) {
		require.NoError(t, svc.SetEnabled(ctx, registered.ID, false))

		_, err := svc.Authenticate(ctx, "bob", "bobs-secret-pass")
		require.ErrorIs(t, err, ErrAccountDisabled)

		// Wrong password on a disabled account still reads as invalid
		// credentials, not as a disabled account.
		_, err = svc.Authenticate(ctx, "bob", "not-the-password")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		require.NoError(t, svc.SetEnabled(ctx, registered.ID, true))
		_, err = svc.Authenticate(ctx, "bob", "bobs-secret-pass")
		require.NoError(t, err)
	})
}

func TestUserServiceChangePassword(t *testing.T) {
	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	user, err := svc.Register(ctx, "carol", "original-password")
	require.NoError(t, err)

	t.Run("requires the old password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, user.ID, "wrong-old-pass", "replacement-pass")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("new password takes effect", func(t *testing.T) {
		require.NoError(t, svc.ChangePassword(ctx, user.ID, "original-password", "replacement-pass"))

		_, err := svc.Authenticate(ctx, "carol", "original-password")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = svc.Authenticate(ctx, "carol", "replacement-pass")
		require.NoError(t, err)
	})
}

func TestUserServiceSetEnabled(t *testing.T) {
	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	user, err := svc.Register(ctx, "dave", "daves-password")
	require.NoError(t, err)

	t.Run("idempotent", func(t *testing.T) {
		require.NoError(t, svc.SetEnabled(ctx, user.ID, false))
		require.NoError(t, svc.SetEnabled(ctx, user.ID, false))

		got, err := svc.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		require.False(t, got.Enabled)
	})

	t.Run("unknown user", func(t *testing.T) {
		require.ErrorIs(t, svc.SetEnabled(ctx, "missing-id", true), ErrNotFound)
	})
}

func TestGuardRequireRole(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	users := &UserService{Store: st}
	guard := &Guard{Store: st}

	homeowner, err := users.Register(ctx, "erin", "erins-password")
	require.NoError(t, err)

	t.Run("matching role passes", func(t *testing.T) {
		require.NoError(t, guard.RequireRole(ctx, homeowner.ID, domain.RoleHomeowner))
	})

	t.Run("role mismatch is forbidden", func(t *testing.T) {
		require.ErrorIs(t, guard.RequireRole(ctx, homeowner.ID, domain.RoleAdmin), ErrForbidden)
	})

	t.Run("disabled account is forbidden even with the right role", func(t *testing.T) {
		require.NoError(t, users.SetEnabled(ctx, homeowner.ID, false))
		require.ErrorIs(t, guard.RequireRole(ctx, homeowner.ID, domain.RoleHomeowner), ErrForbidden)
	})

	t.Run("unknown user", func(t *testing.T) {
		require.ErrorIs(t, guard.RequireRole(ctx, "missing-id", domain.RoleAdmin), ErrNotFound)
	})
}
