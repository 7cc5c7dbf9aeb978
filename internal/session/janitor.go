package session

import (
	"context"
	"log/slog"
	"time"
)

const defaultJanitorInterval = time.Minute

// JanitorOption configures a Janitor.
type JanitorOption func(*Janitor)

// WithInterval sets the time between sweeps.
func WithInterval(interval time.Duration) JanitorOption {
	return func(j *Janitor) {
		if interval > 0 {
			j.interval = interval
		}
	}
}

// WithLogger sets the logger used for sweep results.
func WithLogger(logger *slog.Logger) JanitorOption {
	return func(j *Janitor) {
		if logger != nil {
			j.logger = logger
		}
	}
}

// Janitor periodically drops idle sessions from a Store.
type Janitor struct {
	store    *Store
	interval time.Duration
	logger   *slog.Logger
}

// NewJanitor creates a janitor for store.
func NewJanitor(store *Store, opts ...JanitorOption) *Janitor {
	j := &Janitor{
		store:    store,
		interval: defaultJanitorInterval,
		logger:   slog.Default().With("component", "session-janitor"),
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Run sweeps once immediately and then on every tick until ctx is done.
func (j *Janitor) Run(ctx context.Context) {
	j.sweep()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.sweep()
		}
	}
}

func (j *Janitor) sweep() {
	if removed := j.store.DeleteExpired(); removed > 0 {
		j.logger.Info("Expired sessions removed", "removed", removed, "remaining", j.store.Len())
	}
}
