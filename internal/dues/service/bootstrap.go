package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ovalview/hoadues/internal/dues/domain"
	"github.com/ovalview/hoadues/internal/dues/store"
	"github.com/ovalview/hoadues/pkg/cryptox"
	"github.com/ovalview/hoadues/pkg/idx"
)

// AdminUsername is the well-known first-run administrator account name.
const AdminUsername = "admin"

// BootstrapService provisions the admin account on first run. There is no
// hardcoded password: the operator supplies one via configuration, or a
// random one is generated and logged exactly once at creation time.
type BootstrapService struct {
	Store store.Store

	// AdminPassword is the operator-supplied initial password. When empty a
	// random password is generated.
	AdminPassword string

	Logger *slog.Logger
}

// EnsureAdmin creates the admin user if and only if it does not exist yet.
// Safe to run on every start; concurrent starts resolve via the username
// unique index.
func (s *BootstrapService) EnsureAdmin(ctx context.Context) error {
	_, err := s.Store.Users().GetUserByUsername(ctx, AdminUsername)
	if err == nil {
		return nil // already provisioned
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	password := s.AdminPassword
	generated := false
	if password == "" {
		password, err = cryptox.GeneratePassword()
		if err != nil {
			return err
		}
		generated = true
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return err
	}

	admin := domain.User{
		ID:           idx.New().String(),
		Username:     AdminUsername,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Enabled:      true,
	}

	if err := s.Store.Users().CreateUser(ctx, admin); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil // another instance won the race
		}
		return err
	}

	if generated {
		// The only place the generated password is ever visible.
		s.Logger.Warn("admin account provisioned with generated password",
			slog.String("username", AdminUsername),
			slog.String("password", password),
		)
	} else {
		s.Logger.Info("admin account provisioned", slog.String("username", AdminUsername))
	}

	return nil
}
