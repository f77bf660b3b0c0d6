// Package coverage tracks which output offsets a scan has written.
// It wraps the official roaring implementation.
//
// A correct scan writes every offset in [0, points) exactly once; the tracker
// makes that checkable in verify mode and in tests without shadow buffers.
package coverage

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Tracker records written output offsets for one scan invocation.
//
// Tracker is NOT thread-safe. It is owned by a single scan for its duration.
type Tracker struct {
	rb       *roaring.Bitmap
	doubles  uint64
	expected uint64
}

// NewTracker creates a tracker for an output of the given length.
func NewTracker(points int) *Tracker {
	return &Tracker{
		rb:       roaring.New(),
		expected: uint64(points),
	}
}

// MarkRange records a write of the half-open offset range [start, start+n).
// Offsets already recorded are counted as double writes.
func (t *Tracker) MarkRange(start, n int) {
	lo := uint64(start)
	hi := uint64(start + n)

	before := t.rb.GetCardinality()
	t.rb.AddRange(lo, hi)
	added := t.rb.GetCardinality() - before
	t.doubles += uint64(n) - added
}

// Written returns the number of distinct offsets recorded.
func (t *Tracker) Written() uint64 {
	return t.rb.GetCardinality()
}

// DoubleWrites returns the number of writes that hit an already-written offset.
func (t *Tracker) DoubleWrites() uint64 {
	return t.doubles
}

// Complete reports whether every expected offset was written exactly once.
func (t *Tracker) Complete() bool {
	return t.doubles == 0 && t.rb.GetCardinality() == t.expected
}

// Gaps returns the offsets in [0, expected) that were never written.
func (t *Tracker) Gaps() []uint32 {
	full := roaring.New()
	full.AddRange(0, t.expected)
	full.AndNot(t.rb)
	return full.ToArray()
}

// Reset clears the tracker for reuse with the same expected length.
func (t *Tracker) Reset() {
	t.rb.Clear()
	t.doubles = 0
}
