package tilescan

import (
	"fmt"
)

// ErrInvalidLayout indicates a non-positive geometry parameter.
type ErrInvalidLayout struct {
	Field string
	Value int
}

func (e *ErrInvalidLayout) Error() string {
	return fmt.Sprintf("invalid layout: %s must be positive, got %d", e.Field, e.Value)
}

// ErrLengthMismatch indicates a bulk array whose length does not match the
// configured layout.
//
// Array lengths are the only precondition checked at run time; the check
// happens once per scan, outside the tile loop.
type ErrLengthMismatch struct {
	Array    string
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("%s length mismatch: expected %d, got %d", e.Array, e.Expected, e.Actual)
}

// ErrIncompleteCoverage indicates that a verified scan did not write every
// output offset exactly once.
type ErrIncompleteCoverage struct {
	Written      uint64
	Expected     uint64
	DoubleWrites uint64
}

func (e *ErrIncompleteCoverage) Error() string {
	return fmt.Sprintf("incomplete output coverage: wrote %d of %d offsets (%d double writes)",
		e.Written, e.Expected, e.DoubleWrites)
}
