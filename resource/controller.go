// Package resource manages the compute and bandwidth budget of scans.
package resource

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits for scan execution.
type Config struct {
	// MaxWorkers is the maximum number of concurrent distance workers.
	// If 0, defaults to 1 (fully sequential compute).
	MaxWorkers int64

	// TilesPerSec caps how many tiles are streamed per second.
	// If 0, unlimited. Used to share bulk-memory bandwidth with
	// other consumers of the same storage.
	TilesPerSec float64
}

// Controller enforces the configured limits.
// A nil Controller is valid and enforces nothing.
type Controller struct {
	cfg Config

	workerSem *semaphore.Weighted
	pacer     *rate.Limiter
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 1
	}

	c := &Controller{
		cfg:       cfg,
		workerSem: semaphore.NewWeighted(cfg.MaxWorkers),
	}

	if cfg.TilesPerSec > 0 {
		c.pacer = rate.NewLimiter(rate.Limit(cfg.TilesPerSec), 1)
	}

	return c
}

// MaxWorkers returns the configured worker budget.
func (c *Controller) MaxWorkers() int64 {
	if c == nil {
		return 1
	}
	return c.cfg.MaxWorkers
}

// AcquireWorker reserves a distance worker slot.
// Blocks if all slots are busy.
func (c *Controller) AcquireWorker(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.workerSem.Acquire(ctx, 1)
}

// TryAcquireWorker attempts to reserve a worker slot without blocking.
func (c *Controller) TryAcquireWorker() bool {
	if c == nil {
		return true
	}
	return c.workerSem.TryAcquire(1)
}

// ReleaseWorker releases a worker slot.
func (c *Controller) ReleaseWorker() {
	if c == nil {
		return
	}
	c.workerSem.Release(1)
}

// WaitTile blocks until the pacer allows the next tile to be streamed.
func (c *Controller) WaitTile(ctx context.Context) error {
	if c == nil || c.pacer == nil {
		return nil
	}
	return c.pacer.Wait(ctx)
}

// TryTile reports whether a tile may be streamed right now without waiting.
func (c *Controller) TryTile() bool {
	if c == nil || c.pacer == nil {
		return true
	}
	return c.pacer.AllowN(time.Now(), 1)
}
