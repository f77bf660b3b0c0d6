package resource

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilController(t *testing.T) {
	var c *Controller

	assert.NoError(t, c.AcquireWorker(context.Background()))
	assert.True(t, c.TryAcquireWorker())
	c.ReleaseWorker()
	assert.NoError(t, c.WaitTile(context.Background()))
	assert.True(t, c.TryTile())
	assert.Equal(t, int64(1), c.MaxWorkers())
}

func TestWorkerBudget(t *testing.T) {
	c := NewController(Config{MaxWorkers: 2})

	require.NoError(t, c.AcquireWorker(context.Background()))
	require.NoError(t, c.AcquireWorker(context.Background()))
	assert.False(t, c.TryAcquireWorker())

	c.ReleaseWorker()
	assert.True(t, c.TryAcquireWorker())

	c.ReleaseWorker()
	c.ReleaseWorker()
}

func TestWorkerAcquireCancellation(t *testing.T) {
	c := NewController(Config{MaxWorkers: 1})
	require.NoError(t, c.AcquireWorker(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := c.AcquireWorker(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	c.ReleaseWorker()
}

func TestTilePacer(t *testing.T) {
	c := NewController(Config{TilesPerSec: 1000})

	// First tile is covered by the initial burst.
	assert.True(t, c.TryTile())

	// Waiting must respect context cancellation.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < 3; i++ {
		if err := c.WaitTile(ctx); err != nil {
			assert.ErrorIs(t, err, context.Canceled)
			return
		}
	}
}

func TestDefaultWorkers(t *testing.T) {
	c := NewController(Config{})
	assert.Equal(t, int64(1), c.MaxWorkers())
}
