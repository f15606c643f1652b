package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/ovalview/hoadues/internal/dues/domain"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBootstrapEnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("operator-supplied password", func(t *testing.T) {
		st := newTestStore(t)
		svc := &BootstrapService{
			Store:         st,
			AdminPassword: "operator-chosen-pass",
			Logger:        discardLogger(),
		}
		require.NoError(t, svc.EnsureAdmin(ctx))

		users := &UserService{Store: st}
		admin, err := users.Authenticate(ctx, AdminUsername, "operator-chosen-pass")
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, admin.Role)
		require.True(t, admin.Enabled)
	})

	t.Run("generated password when none supplied", func(t *testing.T) {
		st := newTestStore(t)
		svc := &BootstrapService{Store: st, Logger: discardLogger()}
		require.NoError(t, svc.EnsureAdmin(ctx))

		admin, err := st.Users().GetUserByUsername(ctx, AdminUsername)
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, admin.Role)
		require.NotEmpty(t, admin.PasswordHash)
	})

	t.Run("idempotent across restarts", func(t *testing.T) {
		st := newTestStore(t)
		svc := &BootstrapService{
			Store:         st,
			AdminPassword: "operator-chosen-pass",
			Logger:        discardLogger(),
		}
		require.NoError(t, svc.EnsureAdmin(ctx))

		first, err := st.Users().GetUserByUsername(ctx, AdminUsername)
		require.NoError(t, err)

		// A second run, even with a different configured password, never
		// touches the existing account.
		svc.AdminPassword = "different-password"
		require.NoError(t, svc.EnsureAdmin(ctx))

		second, err := st.Users().GetUserByUsername(ctx, AdminUsername)
		require.NoError(t, err)
		require.Equal(t, first.ID, second.ID)
		require.Equal(t, first.PasswordHash, second.PasswordHash)

		count, err := st.Users().CountUsers(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(1), count)
	})
}

func TestSweeperSweep(t *testing.T) {
	ctx := context.Background()

	svc, blobs := newUploadService(t)

	// A referenced receipt via the regular upload path, and an orphan
	// written directly, as if the process died before the ledger insert.
	payment, err := svc.HandleUpload(ctx, "alice",
		domain.Period{Month: 1, Year: 2026}, 15000, []byte("kept"), "kept.pdf")
	require.NoError(t, err)

	require.NoError(t, blobs.Put("orphan.pdf", []byte("orphan")))

	sweeper := NewSweeperService(svc.Ledger.Store, blobs, discardLogger(), 0)
	sweeper.MinAge = 0 // everything is old enough in tests
	sweeper.Sweep(ctx)

	names, err := blobs.List()
	require.NoError(t, err)
	require.Equal(t, []string{payment.ReceiptName}, names)
}
