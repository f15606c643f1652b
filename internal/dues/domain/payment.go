package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Payment status lifecycle. Transitions are one-directional: a submission
// starts PENDING and ends in exactly one of APPROVED or REJECTED.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Period identifies one billing cycle per homeowner.
type Period struct {
	Month int // 1..12
	Year  int
}

var ErrInvalidPeriod = errors.New("domain: invalid billing period")

// ParsePeriod parses month and year form inputs. Months are accepted with or
// without a leading zero ("3" and "03" are the same period).
func ParsePeriod(month, year string) (Period, error) {
	m, err := strconv.Atoi(strings.TrimSpace(month))
	if err != nil || m < 1 || m > 12 {
		return Period{}, ErrInvalidPeriod
	}

	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil || y < 2000 || y > 2200 {
		return Period{}, ErrInvalidPeriod
	}

	return Period{Month: m, Year: y}, nil
}

func (p Period) String() string {
	return fmt.Sprintf("%02d/%d", p.Month, p.Year)
}

// Payment is one dues submission. Username is a back-reference to the
// credential store; the ledger never owns or deletes users.
type Payment struct {
	ID           string
	Username     string
	ReceiptName  string // generated blob-store name
	Status       string
	Period       Period
	AmountCents  int64
	RejectReason string // set only on REJECTED records
	UploadedAt   time.Time
	UpdatedAt    time.Time
}

// PaymentFilter narrows admin listings. Nil fields are not applied; each
// field composes independently.
type PaymentFilter struct {
	Month *int
	Year  *int
}

// Summary holds the admin dashboard counters.
type Summary struct {
	TotalUsers    int64
	TotalPayments int64
	PendingCount  int64
}

var ErrInvalidAmount = errors.New("domain: invalid amount")

// ParseAmountCents parses a decimal amount string ("120", "120.5", "120.50")
// into integer cents. Money is never kept as a float.
func ParseAmountCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return 0, ErrInvalidAmount
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" || len(frac) > 2 {
		return 0, ErrInvalidAmount
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	cents := int64(0)
	if frac != "" {
		// Pad so ".5" means 50 cents.
		if len(frac) == 1 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, ErrInvalidAmount
		}
	}

	if units > (1<<62)/100 {
		return 0, ErrInvalidAmount
	}

	return units*100 + cents, nil
}

// FormatAmountCents renders cents back to the decimal wire form.
func FormatAmountCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
