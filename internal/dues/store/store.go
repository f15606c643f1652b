package store

import (
	"context"
	"errors"

	"github.com/ovalview/hoadues/internal/dues/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Payments() Payments

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// Use it for multi-step operations that must be atomic (e.g., the
	// duplicate-period check plus insert). The caller MUST call Commit()
	// or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to handle transactions.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during login; the match is case-sensitive.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdatePasswordHash sets the password_hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// SetEnabled toggles the enabled flag; idempotent.
	SetEnabled(ctx context.Context, userID string, enabled bool) error

	// ListUsers returns all users ordered by creation (newest first).
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CountUsers returns the number of users.
	CountUsers(ctx context.Context) (int64, error)
}

type Payments interface {
	// GetPaymentByID returns a payment by id.
	GetPaymentByID(ctx context.Context, id string) (domain.Payment, error)

	// CreatePayment inserts a new submission. The (username, month, year)
	// unique index is the source of truth for the one-submission-per-period
	// invariant; violations surface as ErrAlreadyExists.
	CreatePayment(ctx context.Context, p domain.Payment) error

	// ExistsForPeriod reports whether the user already has a submission for
	// the period, regardless of its status.
	ExistsForPeriod(ctx context.Context, username string, period domain.Period) (bool, error)

	// SetStatus updates status (and optional reject reason), bumps updated_at.
	SetStatus(ctx context.Context, paymentID, status, reason string) error

	// ListForUser returns the user's submissions newest first (uploaded_at
	// DESC, id DESC tiebreak).
	ListForUser(ctx context.Context, username string) ([]domain.Payment, error)

	// ListFiltered returns all submissions matching the filter, newest first.
	ListFiltered(ctx context.Context, f domain.PaymentFilter) ([]domain.Payment, error)

	// LatestForUser returns the most recent submission, or ErrNotFound when
	// the user has never submitted.
	LatestForUser(ctx context.Context, username string) (domain.Payment, error)

	// SumApprovedForPeriod sums amount_cents over APPROVED records in the
	// period; zero when none match.
	SumApprovedForPeriod(ctx context.Context, period domain.Period) (int64, error)

	// CountPayments returns total and pending submission counts.
	CountPayments(ctx context.Context) (total, pending int64, err error)

	// ListReceiptNames returns every referenced receipt name. Used by the
	// sweeper to find orphaned blobs.
	ListReceiptNames(ctx context.Context) ([]string, error)
}
