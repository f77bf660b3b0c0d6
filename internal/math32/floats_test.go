package math32

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquaredL2(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float32
	}{
		{"Positive values", []float32{1, 2, 3}, []float32{4, 5, 6}, 27.0},
		{"Negative values", []float32{-1, -2, -3}, []float32{-4, -5, -6}, 27.0},
		{"Mixed values", []float32{1, -2, 3}, []float32{-4, 5, -6}, 155.0},
		{"Zero values", []float32{0, 0, 0}, []float32{0, 0, 0}, 0.0},
		{"Identical vectors", []float32{7, 8, 9}, []float32{7, 8, 9}, 0.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SquaredL2(tc.a, tc.b))
			assert.Equal(t, tc.expected, SquaredL2Strict(tc.a, tc.b))
		})
	}
}

func TestSquaredL2Unrolled(t *testing.T) {
	// Integer-valued inputs: every partial sum is exact in float32, so the
	// unrolled path must agree bit-for-bit with the strict scalar loop.
	for _, n := range []int{16, 17, 18, 19, 31, 64, 128} {
		a := make([]float32, n)
		b := make([]float32, n)
		for i := range a {
			a[i] = float32(i % 11)
			b[i] = float32((i * 3) % 7)
		}
		assert.Equal(t, SquaredL2Strict(a, b), SquaredL2(a, b), "n=%d", n)
	}
}

func TestSquaredL2NonNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(42)) // nolint gosec

	for trial := 0; trial < 100; trial++ {
		a := make([]float32, 32)
		b := make([]float32, 32)
		for i := range a {
			a[i] = rng.Float32()*200 - 100
			b[i] = rng.Float32()*200 - 100
		}
		assert.GreaterOrEqual(t, SquaredL2(a, b), float32(0))
	}
}

func TestSquaredL2NaNPropagates(t *testing.T) {
	a := []float32{1, float32(math.NaN()), 3}
	b := []float32{1, 2, 3}

	assert.True(t, math.IsNaN(float64(SquaredL2(a, b))))
}

func BenchmarkSquaredL2(b *testing.B) {
	const size = 1024
	va := make([]float32, size)
	vb := make([]float32, size)

	for i := range va {
		va[i] = rand.Float32() // nolint gosec
		vb[i] = rand.Float32() // nolint gosec
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = SquaredL2(va, vb)
	}
}
