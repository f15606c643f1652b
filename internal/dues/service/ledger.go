package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ovalview/hoadues/internal/dues/domain"
	"github.com/ovalview/hoadues/internal/dues/store"
	"github.com/ovalview/hoadues/pkg/idx"
	"github.com/ovalview/hoadues/pkg/slogx"
)

// LedgerService is the authoritative record of dues submissions and their
// review state.
type LedgerService struct {
	Store store.Store
}

// HasSubmission reports whether the user already submitted for the period,
// regardless of the submission's status. Used by the upload path to avoid
// writing a blob it would immediately orphan.
func (s *LedgerService) HasSubmission(ctx context.Context, username string, period domain.Period) (bool, error) {
	return s.Store.Payments().ExistsForPeriod(ctx, username, period)
}

// Submit records a new PENDING submission. The existence check and insert
// run in one transaction, and the (username, month, year) unique index is
// the real arbiter: when two submissions race, exactly one insert wins and
// the loser maps to ErrDuplicatePeriod.
func (s *LedgerService) Submit(
	ctx context.Context,
	username string,
	period domain.Period,
	amountCents int64,
	receiptName string,
) (domain.Payment, error) {
	l := slogx.FromContext(ctx)

	payment := domain.Payment{
		ID:          idx.New().String(),
		Username:    username,
		ReceiptName: receiptName,
		Status:      domain.StatusPending,
		Period:      period,
		AmountCents: amountCents,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		exists, err := tx.Payments().ExistsForPeriod(ctx, username, period)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicatePeriod
		}

		if err := tx.Payments().CreatePayment(ctx, payment); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrDuplicatePeriod
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.Payment{}, err
	}

	l.Info("payment submitted",
		slog.String("payment_id", payment.ID),
		slog.String("period", period.String()),
	)

	return s.Store.Payments().GetPaymentByID(ctx, payment.ID)
}

// Approve moves a PENDING submission to APPROVED. Records already in a
// terminal state return ErrInvalidTransition; re-approving is not a silent
// no-op so a review race surfaces to the second admin.
func (s *LedgerService) Approve(ctx context.Context, paymentID string) error {
	return s.review(ctx, paymentID, domain.StatusApproved, "")
}

// Reject moves a PENDING submission to REJECTED, optionally recording why.
func (s *LedgerService) Reject(ctx context.Context, paymentID, reason string) error {
	return s.review(ctx, paymentID, domain.StatusRejected, reason)
}

func (s *LedgerService) review(ctx context.Context, paymentID, status, reason string) error {
	l := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		payment, err := tx.Payments().GetPaymentByID(ctx, paymentID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}

		if payment.Status != domain.StatusPending {
			return ErrInvalidTransition
		}

		return tx.Payments().SetStatus(ctx, paymentID, status, reason)
	})
	if err != nil {
		return err
	}

	l.Info("payment reviewed",
		slog.String("payment_id", paymentID),
		slog.String("status", status),
	)
	return nil
}

// GetPaymentByID fetches one submission.
func (s *LedgerService) GetPaymentByID(ctx context.Context, paymentID string) (domain.Payment, error) {
	payment, err := s.Store.Payments().GetPaymentByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Payment{}, ErrNotFound
		}
		return domain.Payment{}, err
	}
	return payment, nil
}

// ListForUser returns the user's submissions, most recent first.
func (s *LedgerService) ListForUser(ctx context.Context, username string) ([]domain.Payment, error) {
	return s.Store.Payments().ListForUser(ctx, username)
}

// ListFiltered returns all submissions narrowed by the optional period
// filter, most recent first. Admin views only.
func (s *LedgerService) ListFiltered(ctx context.Context, f domain.PaymentFilter) ([]domain.Payment, error) {
	return s.Store.Payments().ListFiltered(ctx, f)
}

// LatestStatus returns the user's most recent submission, or ErrNotFound
// when the user has never submitted.
func (s *LedgerService) LatestStatus(ctx context.Context, username string) (domain.Payment, error) {
	payment, err := s.Store.Payments().LatestForUser(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Payment{}, ErrNotFound
		}
		return domain.Payment{}, err
	}
	return payment, nil
}

// MonthlyApprovedTotal sums the amounts of APPROVED submissions for the
// period, in cents. Zero when nothing matches.
func (s *LedgerService) MonthlyApprovedTotal(ctx context.Context, period domain.Period) (int64, error) {
	return s.Store.Payments().SumApprovedForPeriod(ctx, period)
}

// Summary collects the dashboard counters.
func (s *LedgerService) Summary(ctx context.Context) (domain.Summary, error) {
	users, err := s.Store.Users().CountUsers(ctx)
	if err != nil {
		return domain.Summary{}, err
	}

	total, pending, err := s.Store.Payments().CountPayments(ctx)
	if err != nil {
		return domain.Summary{}, err
	}

	return domain.Summary{
		TotalUsers:    users,
		TotalPayments: total,
		PendingCount:  pending,
	}, nil
}
