// Package scratch provides pooled working storage for scan operations.
// Uses sync.Pool so the steady-state scan path performs no heap allocations.
package scratch

import (
	"sync"
)

// Buffers is the private working storage for one scan invocation: the local
// copy of the query plus the tile-sized staging buffers reused across tiles.
//
// Buffers is NOT thread-safe. It is owned by a single scan for its duration
// and must be returned to the Pool that produced it.
type Buffers struct {
	// Query is the local copy of the query vector (dim floats).
	Query []float32

	// Tile stages one tile of reference points (tileSize*dim floats).
	// Fully overwritten on every tile load.
	Tile []float32

	// Dists stages one tile of computed distances (tileSize floats).
	// Fully overwritten on every tile compute.
	Dists []float32
}

// Pool hands out Buffers sized for a fixed scan geometry.
type Pool struct {
	pool sync.Pool
}

// NewPool creates a pool of scan buffers for the given geometry.
func NewPool(dim, tileSize int) *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Buffers{
					Query: make([]float32, dim),
					Tile:  make([]float32, tileSize*dim),
					Dists: make([]float32, tileSize),
				}
			},
		},
	}
}

// Get retrieves a Buffers from the pool.
// Contents are stale from a previous use; callers overwrite before reading.
func (p *Pool) Get() *Buffers {
	return p.pool.Get().(*Buffers)
}

// Put returns a Buffers to the pool for reuse.
func (p *Pool) Put(b *Buffers) {
	p.pool.Put(b)
}
