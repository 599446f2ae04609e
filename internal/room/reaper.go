package room

import (
	"context"
	"log/slog"
	"time"
)

// Reaper periodically evicts empty rooms that outlived their TTL. It
// runs independently of command traffic and shares the registry's
// locking, so a sweep can never race a room mutation.
type Reaper struct {
	registry *Registry
	interval time.Duration
	ttl      time.Duration
}

// NewReaper creates a reaper for the given registry.
func NewReaper(registry *Registry, interval, ttl time.Duration) *Reaper {
	return &Reaper{
		registry: registry,
		interval: interval,
		ttl:      ttl,
	}
}

// Run sweeps on a fixed interval until the context is cancelled.
func (rp *Reaper) Run(ctx context.Context) {
	ticker := time.NewTicker(rp.interval)
	defer ticker.Stop()

	slog.Info("room reaper started", "interval", rp.interval, "ttl", rp.ttl)
	for {
		select {
		case <-ctx.Done():
			slog.Info("room reaper stopped")
			return
		case <-ticker.C:
			if evicted := rp.registry.Reap(rp.ttl); evicted > 0 {
				slog.Info("reaper sweep finished", "evicted", evicted)
			}
		}
	}
}
