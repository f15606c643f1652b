package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/ovalview/hoadues/internal/dues/blob"
	"github.com/ovalview/hoadues/internal/dues/store"
)

// SweeperService periodically removes receipt blobs no ledger row
// references. Orphans appear when the process dies between the blob write
// and the ledger insert; nothing else creates them, but left alone they
// accumulate forever.
type SweeperService struct {
	Store    store.Store
	Blobs    *blob.Store
	Logger   *slog.Logger
	Interval time.Duration

	// MinAge guards receipts written moments ago whose ledger insert is
	// still in flight.
	MinAge time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewSweeperService creates a sweeper with the given interval. Intervals
// and ages that are zero or negative fall back to defaults.
func NewSweeperService(st store.Store, blobs *blob.Store, logger *slog.Logger, interval time.Duration) *SweeperService {
	if interval <= 0 {
		interval = time.Hour
	}

	return &SweeperService{
		Store:    st,
		Blobs:    blobs,
		Logger:   logger,
		Interval: interval,
		MinAge:   10 * time.Minute,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop to shut down.
func (s *SweeperService) Start() {
	go s.run()
	s.Logger.Info("receipt sweeper started", "interval", s.Interval)
}

// Stop gracefully shuts down the worker, blocking until any in-progress
// sweep finishes.
func (s *SweeperService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("receipt sweeper stopped")
}

func (s *SweeperService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Sweep immediately on startup to clear anything a crash left behind.
	s.Sweep(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Sweep(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Sweep deletes every sufficiently old blob the ledger does not reference.
// Exported so tests (and an operator endpoint, if ever wanted) can trigger
// it directly.
func (s *SweeperService) Sweep(ctx context.Context) {
	referenced, err := s.Store.Payments().ListReceiptNames(ctx)
	if err != nil {
		s.Logger.Error("sweep: failed to list referenced receipts", "error", err)
		return
	}

	keep := make(map[string]struct{}, len(referenced))
	for _, name := range referenced {
		keep[name] = struct{}{}
	}

	stored, err := s.Blobs.ListOlderThan(s.MinAge)
	if err != nil {
		s.Logger.Error("sweep: failed to list stored receipts", "error", err)
		return
	}

	var removed int
	for _, name := range stored {
		if _, ok := keep[name]; ok {
			continue
		}
		if err := s.Blobs.Delete(name); err != nil {
			s.Logger.Error("sweep: failed to delete orphaned receipt",
				"receipt", name, "error", err)
			continue
		}
		removed++
	}

	if removed > 0 {
		s.Logger.Info("sweep: removed orphaned receipts", "count", removed)
	}
}
