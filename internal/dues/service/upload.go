package service

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ovalview/hoadues/internal/dues/blob"
	"github.com/ovalview/hoadues/internal/dues/domain"
	"github.com/ovalview/hoadues/pkg/idx"
	"github.com/ovalview/hoadues/pkg/slogx"
)

// MaxReceiptBytes is the inclusive upper bound on receipt size (5 MiB).
const MaxReceiptBytes = 5 << 20

// allowedExtensions is the receipt file-type allow-list, matched
// case-insensitively on the original filename's extension.
var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".pdf":  {},
}

// UploadService validates an uploaded receipt, stores the bytes, and records
// the submission in the ledger.
type UploadService struct {
	Ledger *LedgerService
	Blobs  *blob.Store

	// MaxBytes overrides MaxReceiptBytes when > 0 (tests).
	MaxBytes int64
}

// HandleUpload runs the full submission flow. Validation order matters:
// file type and size first (no I/O), then the duplicate-period check BEFORE
// the blob write so a rejected duplicate never leaves an orphaned file. The
// insert can still lose a race after the blob exists; in that case the blob
// is deleted before the error is returned.
func (s *UploadService) HandleUpload(
	ctx context.Context,
	username string,
	period domain.Period,
	amountCents int64,
	data []byte,
	originalFilename string,
) (domain.Payment, error) {
	l := slogx.FromContext(ctx)

	ext := strings.ToLower(filepath.Ext(originalFilename))
	if _, ok := allowedExtensions[ext]; !ok {
		return domain.Payment{}, ErrInvalidFileType
	}

	maxBytes := s.MaxBytes
	if maxBytes <= 0 {
		maxBytes = MaxReceiptBytes
	}
	if int64(len(data)) > maxBytes {
		return domain.Payment{}, ErrFileTooLarge
	}

	exists, err := s.Ledger.HasSubmission(ctx, username, period)
	if err != nil {
		return domain.Payment{}, err
	}
	if exists {
		return domain.Payment{}, ErrDuplicatePeriod
	}

	name := receiptName(originalFilename)
	if err := s.Blobs.Put(name, data); err != nil {
		l.Error("failed to store receipt", slog.Any("error", err))
		return domain.Payment{}, err
	}

	payment, err := s.Ledger.Submit(ctx, username, period, amountCents, name)
	if err != nil {
		// The pre-check passed but the insert lost the race (or failed
		// outright); clean up so the blob store doesn't accumulate
		// unreferenced receipts.
		if delErr := s.Blobs.Delete(name); delErr != nil {
			l.Warn("failed to delete orphaned receipt",
				slog.String("receipt", name),
				slog.Any("error", delErr),
			)
		}
		return domain.Payment{}, err
	}

	return payment, nil
}

// receiptName builds a collision-resistant storage name: a ULID prefix for
// uniqueness plus a sanitized tail of the original name to keep the
// extension and aid debugging.
func receiptName(original string) string {
	base := filepath.Base(original)

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	safe := strings.TrimLeft(b.String(), ".")
	if safe == "" {
		safe = "receipt"
	}

	return idx.New().String() + "_" + safe
}
