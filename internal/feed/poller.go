package feed

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cerberus-watch/cerberus/internal/models"
)

// Source supplies the full threat record set for a refresh cycle.
type Source interface {
	ThreatRecords(ctx context.Context) ([]models.ThreatRecord, error)
}

// Poller keeps a notification feed snapshot refreshed on a fixed interval.
// Each successful refresh replaces the snapshot wholesale. A failed refresh
// keeps the previous snapshot (stale-but-available) and logs the error; it
// never clears the feed and never surfaces record-level errors to readers.
// If refresh runs ever overlap, the last one to finish wins; concurrent
// runs are not de-duplicated.
type Poller struct {
	source   Source
	logger   *slog.Logger
	interval time.Duration
	stopChan chan struct{}

	mu        sync.RWMutex
	snapshot  []models.Notification
	refreshed time.Time
}

// NewPoller creates a poller refreshing from source every interval.
func NewPoller(source Source, interval time.Duration, logger *slog.Logger) *Poller {
	return &Poller{
		source:   source,
		logger:   logger,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start begins the refresh loop. It runs once immediately, then on every
// tick until Stop is called or the context is cancelled. The ticker is
// released on exit, so a poller tied to a view or process lifecycle does not
// leak its timer.
func (p *Poller) Start(ctx context.Context) {
	p.logger.Info("starting notification poller", "interval", p.interval)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.Refresh(ctx)

	for {
		select {
		case <-ticker.C:
			p.Refresh(ctx)
		case <-p.stopChan:
			p.logger.Info("notification poller stopped")
			return
		case <-ctx.Done():
			p.logger.Info("notification poller stopping due to context cancellation")
			return
		}
	}
}

// Stop terminates the refresh loop. Must be called at most once.
func (p *Poller) Stop() {
	close(p.stopChan)
}

// Refresh performs a single fetch-and-replace cycle.
func (p *Poller) Refresh(ctx context.Context) {
	records, err := p.source.ThreatRecords(ctx)
	if err != nil {
		p.logger.Error("feed refresh failed, keeping previous snapshot", "error", err)
		return
	}

	fresh := BuildFeed(records)

	p.mu.Lock()
	p.snapshot = fresh
	p.refreshed = time.Now()
	p.mu.Unlock()

	p.logger.Debug("feed refreshed", "notifications", len(fresh))
}

// Snapshot returns the current feed. The returned slice is a copy; callers
// may filter or slice it freely without affecting the poller's state.
func (p *Poller) Snapshot() []models.Notification {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]models.Notification, len(p.snapshot))
	copy(out, p.snapshot)
	return out
}

// LastRefreshed reports when the snapshot was last replaced. The zero time
// means no refresh has succeeded yet.
func (p *Poller) LastRefreshed() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.refreshed
}
