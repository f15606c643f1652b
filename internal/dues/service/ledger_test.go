package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ovalview/hoadues/internal/dues/domain"
	"github.com/ovalview/hoadues/internal/dues/store"
	"github.com/ovalview/hoadues/internal/dues/store/drivers/sqlite"
	"github.com/ovalview/hoadues/pkg/idx"
	"github.com/stretchr/testify/require"
)

// registerUser creates a homeowner the ledger rows can reference.
func registerUser(t *testing.T, st *sqlite.Store, username string) domain.User {
	t.Helper()

	svc := &UserService{Store: st}
	user, err := svc.Register(context.Background(), username, username+"-password")
	require.NoError(t, err)
	return user
}

func TestLedgerSubmit(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	registerUser(t, st, "alice")

	svc := &LedgerService{Store: st}
	march := domain.Period{Month: 3, Year: 2026}

	t.Run("records a pending submission", func(t *testing.T) {
		payment, err := svc.Submit(ctx, "alice", march, 15000, "receipt-march.pdf")
		require.NoError(t, err)
		require.Equal(t, domain.StatusPending, payment.Status)
		require.Equal(t, march, payment.Period)
		require.Equal(t, int64(15000), payment.AmountCents)
		require.False(t, payment.UploadedAt.IsZero())
	})

	t.Run("second submission for the same period is rejected", func(t *testing.T) {
		_, err := svc.Submit(ctx, "alice", march, 15000, "receipt-march-again.pdf")
		require.ErrorIs(t, err, ErrDuplicatePeriod)
	})

	t.Run("rejected status still blocks the period", func(t *testing.T) {
		april := domain.Period{Month: 4, Year: 2026}
		payment, err := svc.Submit(ctx, "alice", april, 15000, "receipt-april.pdf")
		require.NoError(t, err)
		require.NoError(t, svc.Reject(ctx, payment.ID, "unreadable scan"))

		_, err = svc.Submit(ctx, "alice", april, 15000, "receipt-april-retry.pdf")
		require.ErrorIs(t, err, ErrDuplicatePeriod)
	})

	t.Run("other users are unaffected", func(t *testing.T) {
		registerUser(t, st, "bob")
		_, err := svc.Submit(ctx, "bob", march, 12000, "bobs-receipt.pdf")
		require.NoError(t, err)
	})

	t.Run("unique index arbitrates a direct conflict", func(t *testing.T) {
		// A row inserted behind the service's back still loses to the
		// (username, month, year) index.
		err := st.Payments().CreatePayment(ctx, domain.Payment{
			ID:          idx.New().String(),
			Username:    "alice",
			ReceiptName: "smuggled.pdf",
			Status:      domain.StatusPending,
			Period:      march,
			AmountCents: 1,
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("rows must reference a registered user", func(t *testing.T) {
		err := st.Payments().CreatePayment(ctx, domain.Payment{
			ID:          idx.New().String(),
			Username:    "ghost",
			ReceiptName: "ghost.pdf",
			Status:      domain.StatusPending,
			Period:      domain.Period{Month: 12, Year: 2026},
			AmountCents: 1,
		})
		require.Error(t, err)
	})
}

func TestLedgerSubmitConcurrent(t *testing.T) {
	ctx := context.Background()
	st := newFileTestStore(t)
	registerUser(t, st, "alice")

	svc := &LedgerService{Store: st}

	// Fire both submissions at once, a few rounds over distinct periods.
	// Exactly one side may win each round and the loser must surface the
	// domain error, not a raw locking failure.
	for round := 1; round <= 4; round++ {
		period := domain.Period{Month: round, Year: 2026}

		start := make(chan struct{})
		errs := make(chan error, 2)
		for i := range 2 {
			receipt := fmt.Sprintf("receipt-%d-%d.pdf", round, i)
			go func() {
				<-start
				_, err := svc.Submit(ctx, "alice", period, 10000, receipt)
				errs <- err
			}()
		}
		close(start)

		var wins, duplicates int
		for range 2 {
			switch err := <-errs; {
			case err == nil:
				wins++
			case errors.Is(err, ErrDuplicatePeriod):
				duplicates++
			default:
				t.Fatalf("round %d: unexpected error: %v", round, err)
			}
		}
		require.Equal(t, 1, wins, "round %d", round)
		require.Equal(t, 1, duplicates, "round %d", round)

		rows, err := svc.ListFiltered(ctx, domain.PaymentFilter{Month: &period.Month, Year: &period.Year})
		require.NoError(t, err)
		require.Len(t, rows, 1, "round %d", round)
	}
}

func TestLedgerReview(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	registerUser(t, st, "alice")

	svc := &LedgerService{Store: st}

	submit := func(t *testing.T, month int) domain.Payment {
		t.Helper()
		payment, err := svc.Submit(ctx, "alice", domain.Period{Month: month, Year: 2026}, 15000, "receipt.pdf")
		require.NoError(t, err)
		return payment
	}

	t.Run("approve a pending submission", func(t *testing.T) {
		payment := submit(t, 1)
		require.NoError(t, svc.Approve(ctx, payment.ID))

		got, err := svc.GetPaymentByID(ctx, payment.ID)
		require.NoError(t, err)
		require.Equal(t, domain.StatusApproved, got.Status)
	})

	t.Run("reject with a reason", func(t *testing.T) {
		payment := submit(t, 2)
		require.NoError(t, svc.Reject(ctx, payment.ID, "wrong amount"))

		got, err := svc.GetPaymentByID(ctx, payment.ID)
		require.NoError(t, err)
		require.Equal(t, domain.StatusRejected, got.Status)
		require.Equal(t, "wrong amount", got.RejectReason)
	})

	t.Run("terminal states cannot be reviewed again", func(t *testing.T) {
		payment := submit(t, 3)
		require.NoError(t, svc.Approve(ctx, payment.ID))

		require.ErrorIs(t, svc.Approve(ctx, payment.ID), ErrInvalidTransition)
		require.ErrorIs(t, svc.Reject(ctx, payment.ID, "too late"), ErrInvalidTransition)

		// Status is unchanged by the failed transitions.
		got, err := svc.GetPaymentByID(ctx, payment.ID)
		require.NoError(t, err)
		require.Equal(t, domain.StatusApproved, got.Status)
	})

	t.Run("unknown payment", func(t *testing.T) {
		require.ErrorIs(t, svc.Approve(ctx, "missing-id"), ErrNotFound)
		require.ErrorIs(t, svc.Reject(ctx, "missing-id", ""), ErrNotFound)
	})
}

func TestLedgerListing(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	registerUser(t, st, "alice")
	registerUser(t, st, "bob")

	svc := &LedgerService{Store: st}

	// Submissions with distinct upload times so ordering is deterministic.
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	for i, spec := range []struct {
		username string
		month    int
	}{
		{"alice", 1},
		{"alice", 2},
		{"bob", 2},
		{"alice", 3},
	} {
		err := st.Payments().CreatePayment(ctx, domain.Payment{
			ID:          idx.New().String(),
			Username:    spec.username,
			ReceiptName: "receipt.pdf",
			Status:      domain.StatusPending,
			Period:      domain.Period{Month: spec.month, Year: 2026},
			AmountCents: 15000,
			UploadedAt:  base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	t.Run("per-user history is newest first", func(t *testing.T) {
		payments, err := svc.ListForUser(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, payments, 3)
		require.Equal(t, 3, payments[0].Period.Month)
		require.Equal(t, 2, payments[1].Period.Month)
		require.Equal(t, 1, payments[2].Period.Month)
	})

	t.Run("latest status picks the most recent upload", func(t *testing.T) {
		latest, err := svc.LatestStatus(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, 3, latest.Period.Month)
	})

	t.Run("latest status without submissions", func(t *testing.T) {
		registerUser(t, st, "carol")
		_, err := svc.LatestStatus(ctx, "carol")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unfiltered listing covers all users", func(t *testing.T) {
		payments, err := svc.ListFiltered(ctx, domain.PaymentFilter{})
		require.NoError(t, err)
		require.Len(t, payments, 4)
	})

	t.Run("month and year filters compose independently", func(t *testing.T) {
		month := 2
		payments, err := svc.ListFiltered(ctx, domain.PaymentFilter{Month: &month})
		require.NoError(t, err)
		require.Len(t, payments, 2)

		year := 2026
		payments, err = svc.ListFiltered(ctx, domain.PaymentFilter{Month: &month, Year: &year})
		require.NoError(t, err)
		require.Len(t, payments, 2)

		otherYear := 2025
		payments, err = svc.ListFiltered(ctx, domain.PaymentFilter{Year: &otherYear})
		require.NoError(t, err)
		require.Empty(t, payments)
	})
}

func TestLedgerMonthlyApprovedTotal(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	registerUser(t, st, "alice")
	registerUser(t, st, "bob")
	registerUser(t, st, "carol")

	svc := &LedgerService{Store: st}
	june := domain.Period{Month: 6, Year: 2026}

	t.Run("zero when nothing matches", func(t *testing.T) {
		total, err := svc.MonthlyApprovedTotal(ctx, june)
		require.NoError(t, err)
		require.Zero(t, total)
	})

	t.Run("sums only approved submissions for the period", func(t *testing.T) {
		approved, err := svc.Submit(ctx, "alice", june, 15000, "a.pdf")
		require.NoError(t, err)
		require.NoError(t, svc.Approve(ctx, approved.ID))

		alsoApproved, err := svc.Submit(ctx, "bob", june, 12550, "b.pdf")
		require.NoError(t, err)
		require.NoError(t, svc.Approve(ctx, alsoApproved.ID))

		// Pending submissions don't count.
		_, err = svc.Submit(ctx, "carol", june, 99999, "c.pdf")
		require.NoError(t, err)

		// Approved in another period doesn't count.
		july, err := svc.Submit(ctx, "alice", domain.Period{Month: 7, Year: 2026}, 15000, "d.pdf")
		require.NoError(t, err)
		require.NoError(t, svc.Approve(ctx, july.ID))

		total, err := svc.MonthlyApprovedTotal(ctx, june)
		require.NoError(t, err)
		require.Equal(t, int64(27550), total)
	})
}

func TestLedgerSummary(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	registerUser(t, st, "alice")
	registerUser(t, st, "bob")

	svc := &LedgerService{Store: st}

	first, err := svc.Submit(ctx, "alice", domain.Period{Month: 1, Year: 2026}, 15000, "a.pdf")
	require.NoError(t, err)
	require.NoError(t, svc.Approve(ctx, first.ID))

	_, err = svc.Submit(ctx, "alice", domain.Period{Month: 2, Year: 2026}, 15000, "b.pdf")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, "bob", domain.Period{Month: 2, Year: 2026}, 15000, "c.pdf")
	require.NoError(t, err)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), summary.TotalUsers)
	require.Equal(t, int64(3), summary.TotalPayments)
	require.Equal(t, int64(2), summary.PendingCount)
}
