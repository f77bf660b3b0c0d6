package tilescan

import (
	"github.com/hupe1980/tilescan/resource"
)

// Options contains configuration options for a Scanner.
type Options struct {
	// MaxWorkers is the maximum number of goroutines computing distances
	// within one tile. 1 means fully sequential execution.
	MaxWorkers int64

	// TilesPerSec caps tile streaming throughput. 0 means unlimited.
	// Useful when the bulk arrays live on shared storage whose bandwidth
	// other consumers depend on.
	TilesPerSec float64

	// Verify enables output coverage tracking: after each scan the Scanner
	// checks that every output offset was written exactly once. Costs one
	// bitmap update per tile; intended for debugging, not the hot path.
	Verify bool

	// Logger receives structured scan logs. Defaults to a noop logger.
	Logger *Logger
}

// DefaultOptions contains the default configuration options for a Scanner.
var DefaultOptions = Options{
	MaxWorkers: 1,
}

// WithMaxWorkers sets the per-tile distance worker budget.
func WithMaxWorkers(n int64) func(o *Options) {
	return func(o *Options) {
		o.MaxWorkers = n
	}
}

// WithTilesPerSec caps tile streaming throughput.
func WithTilesPerSec(n float64) func(o *Options) {
	return func(o *Options) {
		o.TilesPerSec = n
	}
}

// WithVerify enables output coverage verification.
func WithVerify(verify bool) func(o *Options) {
	return func(o *Options) {
		o.Verify = verify
	}
}

// WithLogger sets the logger used for scan events.
func WithLogger(logger *Logger) func(o *Options) {
	return func(o *Options) {
		o.Logger = logger
	}
}

func (o Options) controller() *resource.Controller {
	if o.MaxWorkers <= 1 && o.TilesPerSec <= 0 {
		// Nothing to enforce; a nil controller skips all bookkeeping.
		return nil
	}
	return resource.NewController(resource.Config{
		MaxWorkers:  o.MaxWorkers,
		TilesPerSec: o.TilesPerSec,
	})
}
