// Package refresh re-triggers a full reload on a fixed wall-clock interval
// when the periodic-refresh option is enabled. It has no coordination with
// in-flight user edits; a refresh landing mid-edit is an accepted race.
package refresh

import (
	"context"
	"time"

	"github.com/BertrandGueri09/Pojet-personnel-recherche/internal"
)

// Refresher periodically invokes a reload function.
type Refresher struct {
	interval time.Duration
	reload   func() error
	log      *internal.Logger
}

// New creates a refresher. The interval is expected to be pre-clamped by
// configuration to the supported 5-300 s range.
func New(interval time.Duration, reload func() error, log *internal.Logger) *Refresher {
	return &Refresher{
		interval: interval,
		reload:   reload,
		log:      log.WithPrefix("Refresh"),
	}
}

// Run blocks until ctx is cancelled, reloading on every tick. Reload
// failures are logged and do not stop the loop; the next tick retries a
// fresh cycle, never the failed one.
func (r *Refresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.log.Info("periodic refresh enabled every %s", r.interval)
	for {
		select {
		case <-ctx.Done():
			r.log.Info("periodic refresh stopped")
			return
		case <-ticker.C:
			if err := r.reload(); err != nil {
				r.log.Warn("reload failed: %v", err)
			}
		}
	}
}
