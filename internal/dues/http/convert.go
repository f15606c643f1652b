package http

import (
	"github.com/ovalview/hoadues/internal/dues/domain"
	"github.com/ovalview/hoadues/pkg/duesapi"
)

// paymentInfo maps a ledger record to its wire representation.
func paymentInfo(p domain.Payment) duesapi.PaymentInfo {
	return duesapi.PaymentInfo{
		ID:           p.ID,
		Username:     p.Username,
		Month:        p.Period.Month,
		Year:         p.Period.Year,
		AmountCents:  p.AmountCents,
		Amount:       domain.FormatAmountCents(p.AmountCents),
		Status:       p.Status,
		RejectReason: p.RejectReason,
		ReceiptName:  p.ReceiptName,
		UploadedAt:   p.UploadedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// paymentList maps a slice of ledger records, preserving order.
func paymentList(payments []domain.Payment) duesapi.PaymentListResponse {
	out := duesapi.PaymentListResponse{
		Payments: make([]duesapi.PaymentInfo, 0, len(payments)),
	}
	for _, p := range payments {
		out.Payments = append(out.Payments, paymentInfo(p))
	}
	return out
}

// userInfo maps a credential-store account to its wire representation.
// The password hash never leaves the domain type.
func userInfo(u domain.User) duesapi.UserInfo {
	return duesapi.UserInfo{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		Enabled:   u.Enabled,
		CreatedAt: u.CreatedAt,
	}
}
