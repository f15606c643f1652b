package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/ovalview/hoadues/internal/dues/domain"
)

type paymentsRepo struct {
	db dbtx
}

const paymentColumns = `id, username, receipt_name, status, month, year, amount_cents, reject_reason, uploaded_at, updated_at`

func scanPayment(row interface{ Scan(...any) error }) (domain.Payment, error) {
	var (
		p      domain.Payment
		reason sql.NullString
	)
	err := row.Scan(
		&p.ID,
		&p.Username,
		&p.ReceiptName,
		&p.Status,
		&p.Period.Month,
		&p.Period.Year,
		&p.AmountCents,
		&reason,
		&p.UploadedAt,
		&p.UpdatedAt,
	)
	if reason.Valid {
		p.RejectReason = reason.String
	}
	return p, err
}

func (r *paymentsRepo) GetPaymentByID(ctx context.Context, id string) (domain.Payment, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id = ?`, id)

	p, err := scanPayment(row)
	if err != nil {
		return domain.Payment{}, mapNotFound(err)
	}
	return p, nil
}

func (r *paymentsRepo) CreatePayment(ctx context.Context, p domain.Payment) error {
	now := time.Now().UTC()
	uploadedAt := p.UploadedAt
	if uploadedAt.IsZero() {
		uploadedAt = now
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO payments (id, username, receipt_name, status, month, year, amount_cents, reject_reason, uploaded_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NULL, ?, ?)`,
		p.ID, p.Username, p.ReceiptName, p.Status,
		p.Period.Month, p.Period.Year, p.AmountCents,
		uploadedAt, now,
	)
	return mapConstraint(err)
}

func (r *paymentsRepo) ExistsForPeriod(
	ctx context.Context,
	username string,
	period domain.Period,
) (bool, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM payments WHERE username = ? AND month = ? AND year = ?`,
		username, period.Month, period.Year,
	).Scan(&count)
	return count > 0, err
}

func (r *paymentsRepo) SetStatus(ctx context.Context, paymentID, status, reason string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE payments SET status = ?, reject_reason = ?, updated_at = ? WHERE id = ?`,
		status, nullString(reason), time.Now().UTC(), paymentID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *paymentsRepo) ListForUser(ctx context.Context, username string) ([]domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+paymentColumns+` FROM payments
		WHERE username = ?
		ORDER BY uploaded_at DESC, id DESC`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPayments(rows)
}

func (r *paymentsRepo) ListFiltered(
	ctx context.Context,
	f domain.PaymentFilter,
) ([]domain.Payment, error) {
	// Structured filter; each field composes independently. No string-built
	// WHERE clauses with user input.
	var (
		clauses []string
		args    []any
	)
	if f.Month != nil {
		clauses = append(clauses, "month = ?")
		args = append(args, *f.Month)
	}
	if f.Year != nil {
		clauses = append(clauses, "year = ?")
		args = append(args, *f.Year)
	}

	query := `SELECT ` + paymentColumns + ` FROM payments`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY uploaded_at DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPayments(rows)
}

func (r *paymentsRepo) LatestForUser(ctx context.Context, username string) (domain.Payment, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+paymentColumns+` FROM payments
		WHERE username = ?
		ORDER BY uploaded_at DESC, id DESC
		LIMIT 1`, username)

	p, err := scanPayment(row)
	if err != nil {
		return domain.Payment{}, mapNotFound(err)
	}
	return p, nil
}

func (r *paymentsRepo) SumApprovedForPeriod(
	ctx context.Context,
	period domain.Period,
) (int64, error) {
	var sum int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount_cents), 0) FROM payments
		WHERE status = ? AND month = ? AND year = ?`,
		domain.StatusApproved, period.Month, period.Year,
	).Scan(&sum)
	return sum, err
}

func (r *paymentsRepo) CountPayments(ctx context.Context) (total, pending int64, err error) {
	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0)
		FROM payments`,
		domain.StatusPending,
	).Scan(&total, &pending)
	return total, pending, err
}

func (r *paymentsRepo) ListReceiptNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT receipt_name FROM payments`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func collectPayments(rows *sql.Rows) ([]domain.Payment, error) {
	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
