package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ovalview/hoadues/internal/dues/domain"
	"github.com/ovalview/hoadues/internal/dues/store"
	"github.com/ovalview/hoadues/pkg/cryptox"
	"github.com/ovalview/hoadues/pkg/idx"
	"github.com/ovalview/hoadues/pkg/slogx"
)

type UserService struct {
	Store store.Store
}

// Register creates a homeowner account. The username unique index arbitrates
// races; a losing insert surfaces as ErrUsernameTaken.
func (s *UserService) Register(ctx context.Context, username, password string) (domain.User, error) {
	l := slogx.FromContext(ctx)

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		l.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleHomeowner,
		Enabled:      true,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, err
	}

	l.Info("user registered", slog.String("user_id", user.ID))
	return user, nil
}

// Authenticate verifies credentials and the enabled flag. An unknown
// username and a wrong password both return ErrInvalidCredentials so the
// response never reveals whether the account exists; the disabled check
// runs only after the hash matched.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}

	if !user.Enabled {
		return domain.User{}, ErrAccountDisabled
	}

	return user, nil
}

// ChangePassword verifies the old password before storing the new hash.
func (s *UserService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	if err := cryptox.VerifyPassword(oldPassword, user.PasswordHash); err != nil {
		return ErrInvalidCredentials
	}

	newHash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		l.Error("failed to hash new password", slog.Any("error", err))
		return err
	}

	if err := s.Store.Users().UpdatePasswordHash(ctx, userID, newHash); err != nil {
		return err
	}

	l.Info("password changed", slog.String("user_id", userID))
	return nil
}

// SetEnabled toggles the account's enabled flag; idempotent.
func (s *UserService) SetEnabled(ctx context.Context, userID string, enabled bool) error {
	if err := s.Store.Users().SetEnabled(ctx, userID, enabled); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	slogx.FromContext(ctx).Info("user enabled flag updated",
		slog.String("user_id", userID),
		slog.Bool("enabled", enabled),
	)
	return nil
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// ListUsers returns all accounts, newest first. Admin views only.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}
