// Package math32 provides float32 vector kernels for the scan hot path.
// This is an internal package - external users should use the distance package.
package math32

// SquaredL2 calculates the squared L2 distance between a and b.
// Assumes len(a) == len(b) (caller's responsibility).
func SquaredL2(a, b []float32) float32 {
	if len(a) >= 16 {
		return squaredL2Unrolled(a, b)
	}
	return squaredL2Generic(a, b)
}

// SquaredL2Strict calculates the squared L2 distance accumulating strictly
// in ascending index order. Slower than SquaredL2 but bit-reproducible
// against a plain scalar loop.
func SquaredL2Strict(a, b []float32) float32 {
	return squaredL2Generic(a, b)
}

func squaredL2Generic(a, b []float32) float32 {
	var distance float32
	for i := range a {
		d := a[i] - b[i]
		distance += d * d
	}

	return distance
}

// squaredL2Unrolled keeps four independent partial sums so the FP pipeline
// stays full. The partials are combined once at the end; isolation between
// vector pairs is unaffected.
func squaredL2Unrolled(a, b []float32) float32 {
	var s0, s1, s2, s3 float32

	n := len(a)
	i := 0
	for ; i+4 <= n; i += 4 {
		d0 := a[i] - b[i]
		d1 := a[i+1] - b[i+1]
		d2 := a[i+2] - b[i+2]
		d3 := a[i+3] - b[i+3]
		s0 += d0 * d0
		s1 += d1 * d1
		s2 += d2 * d2
		s3 += d3 * d3
	}
	for ; i < n; i++ {
		d := a[i] - b[i]
		s0 += d * d
	}

	return s0 + s1 + s2 + s3
}
