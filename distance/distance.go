// Package distance provides the public API for vector distance calculations.
package distance

import (
	"github.com/hupe1980/tilescan/internal/math32"
)

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float32) float32 {
	return math32.SquaredL2(a, b)
}

// SquaredL2Strict is SquaredL2 with strictly ascending accumulation order.
// Use when bit-exact agreement with a plain scalar loop is required.
func SquaredL2Strict(a, b []float32) float32 {
	return math32.SquaredL2Strict(a, b)
}

// SquaredL2Batch computes the squared L2 distance from query to every point
// stored row-major in points, writing one result per point into dists.
//
// points holds len(dists) rows of len(query) floats each. Every result uses
// its own accumulator; rows are independent of each other.
func SquaredL2Batch(query, points, dists []float32) {
	dim := len(query)
	for i := range dists {
		dists[i] = math32.SquaredL2(points[i*dim:(i+1)*dim], query)
	}
}
