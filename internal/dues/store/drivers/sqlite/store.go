package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/ovalview/hoadues/internal/dues/store"
	sqlite3 "modernc.org/sqlite"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx so the repos can run inside
// or outside a transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db  *sql.DB
	dsn string
}

// connParams is appended to every DSN so the settings apply to each pooled
// connection, not just whichever one happens to serve a one-off exec.
// _txlock=immediate makes transactions take the write lock at BEGIN: when
// two inserts race, the loser blocks (within busy_timeout) until the winner
// commits and then fails on the unique index, instead of hitting
// SQLITE_BUSY on a deferred read-to-write upgrade that mapConstraint can
// never translate.
const connParams = "_txlock=immediate&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

func NewStore(dsn string) (*Store, error) {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	dsn += sep + connParams

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Ensure rollback is called if we panic or return early with error
	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err // rollback happens in defer
	}

	return tx.Commit()
}

func (s *Store) Users() store.Users       { return &usersRepo{db: s.db} }
func (s *Store) Payments() store.Payments { return &paymentsRepo{db: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// SQLite extended result codes for UNIQUE constraint violations.
const (
	sqliteConstraintUnique     = 2067
	sqliteConstraintPrimaryKey = 1555
)

// requireRowAffected turns an UPDATE that matched nothing into ErrNotFound.
func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// mapConstraint translates unique-index violations into ErrAlreadyExists so
// callers can race on inserts and let the database arbitrate.
func mapConstraint(err error) error {
	var se *sqlite3.Error
	if errors.As(err, &se) {
		if se.Code() == sqliteConstraintUnique || se.Code() == sqliteConstraintPrimaryKey {
			return store.ErrAlreadyExists
		}
	}
	return err
}
