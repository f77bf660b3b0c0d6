package tilescan

import (
	"context"
	"sync"

	"github.com/hupe1980/tilescan/distance"
	"github.com/hupe1980/tilescan/internal/coverage"
	"github.com/hupe1980/tilescan/internal/scratch"
	"github.com/hupe1980/tilescan/resource"
)

// minParallelPoints is the smallest tile for which fanning out distance
// workers beats running the batch kernel on one goroutine.
const minParallelPoints = 64

// Scanner computes full distance vectors for a fixed scan geometry.
//
// A Scanner is safe for concurrent use: each Scan owns its working buffers
// for the duration of the call. Concurrent scans must target distinct output
// arrays.
type Scanner struct {
	layout Layout
	opts   Options
	ctrl   *resource.Controller
	bufs   *scratch.Pool
	logger *Logger
}

// New creates a Scanner for the given geometry.
// Dim, tileSize and numTiles must all be positive; they are fixed for the
// lifetime of the Scanner.
func New(dim, tileSize, numTiles int, optFns ...func(o *Options)) (*Scanner, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	layout := Layout{Dim: dim, TileSize: tileSize, NumTiles: numTiles}
	if err := layout.validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = NoopLogger()
	}

	return &Scanner{
		layout: layout,
		opts:   opts,
		ctrl:   opts.controller(),
		bufs:   scratch.NewPool(dim, tileSize),
		logger: logger.WithLayout(layout),
	}, nil
}

// Layout returns the scan geometry.
func (s *Scanner) Layout() Layout {
	return s.layout
}

// Scan computes the squared Euclidean distance from query to every reference
// point in space, writing one value per point into out.
//
// query holds Dim floats; space holds Points()*Dim floats, row-major, each
// row one reference point; out holds Points() floats and is fully
// overwritten. Lengths are validated once at entry; inside the tile loop no
// bounds are checked beyond what the runtime enforces.
//
// The reference set streams through a tile-sized working buffer: per tile,
// load then compute then store, strictly in that order. The working buffers
// are reused across tiles, so no stage of tile t+1 starts before tile t is
// stored. NaN or Inf coordinates propagate into the affected distances.
func (s *Scanner) Scan(ctx context.Context, query, space, out []float32) error {
	if err := s.checkLengths(query, space, out); err != nil {
		return err
	}

	buf := s.bufs.Get()
	defer s.bufs.Put(buf)

	// The query is staged once and read by every tile.
	copy(buf.Query, query)

	var tracker *coverage.Tracker
	if s.opts.Verify {
		tracker = coverage.NewTracker(s.layout.Points())
	}

	tilesDone := 0
	for t := 0; t < s.layout.NumTiles; t++ {
		if err := ctx.Err(); err != nil {
			s.logger.LogScan(ctx, tilesDone, err)
			return err
		}
		if err := s.ctrl.WaitTile(ctx); err != nil {
			s.logger.LogScan(ctx, tilesDone, err)
			return err
		}

		s.loadTile(space, buf.Tile, t)
		if err := s.computeTile(ctx, buf); err != nil {
			s.logger.LogScan(ctx, tilesDone, err)
			return err
		}
		s.storeTile(buf.Dists, out, t)

		if tracker != nil {
			tracker.MarkRange(s.layout.OutOffset(t), s.layout.TileSize)
		}
		tilesDone++
	}

	if tracker != nil && !tracker.Complete() {
		err := &ErrIncompleteCoverage{
			Written:      tracker.Written(),
			Expected:     uint64(s.layout.Points()),
			DoubleWrites: tracker.DoubleWrites(),
		}
		s.logger.LogScan(ctx, tilesDone, err)
		return err
	}

	s.logger.LogScan(ctx, tilesDone, nil)
	return nil
}

func (s *Scanner) checkLengths(query, space, out []float32) error {
	if len(query) != s.layout.Dim {
		return &ErrLengthMismatch{Array: "query", Expected: s.layout.Dim, Actual: len(query)}
	}
	if len(space) != s.layout.SpaceFloats() {
		return &ErrLengthMismatch{Array: "space", Expected: s.layout.SpaceFloats(), Actual: len(space)}
	}
	if len(out) != s.layout.Points() {
		return &ErrLengthMismatch{Array: "out", Expected: s.layout.Points(), Actual: len(out)}
	}
	return nil
}

// loadTile stages tile t: TileFloats() consecutive floats from the bulk
// reference array. Pure data movement.
func (s *Scanner) loadTile(space, tile []float32, t int) {
	start := s.layout.SpaceOffset(t)
	copy(tile, space[start:start+s.layout.TileFloats()])
}

// storeTile writes tile t's distances to the bulk output array.
// Pure data movement, symmetric to loadTile.
func (s *Scanner) storeTile(dists, out []float32, t int) {
	start := s.layout.OutOffset(t)
	copy(out[start:start+s.layout.TileSize], dists)
}

// computeTile fills buf.Dists with the squared distance from the staged
// query to every staged point. Points are independent, so the tile can be
// split across workers; each point keeps its own accumulator either way.
func (s *Scanner) computeTile(ctx context.Context, buf *scratch.Buffers) error {
	workers := int(s.ctrl.MaxWorkers())
	if workers <= 1 || s.layout.TileSize < minParallelPoints {
		distance.SquaredL2Batch(buf.Query, buf.Tile, buf.Dists)
		return nil
	}

	chunk := (s.layout.TileSize + workers - 1) / workers
	dim := s.layout.Dim

	var wg sync.WaitGroup
	for start := 0; start < s.layout.TileSize; start += chunk {
		end := start + chunk
		if end > s.layout.TileSize {
			end = s.layout.TileSize
		}

		if err := s.ctrl.AcquireWorker(ctx); err != nil {
			wg.Wait()
			return err
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			defer s.ctrl.ReleaseWorker()

			distance.SquaredL2Batch(buf.Query, buf.Tile[start*dim:end*dim], buf.Dists[start:end])
		}(start, end)
	}
	wg.Wait()

	return nil
}
