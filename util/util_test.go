package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRandomVectors(t *testing.T) {
	vecs := NewRNG(1).GenerateRandomVectors(5, 3)

	assert.Len(t, vecs, 5)
	for _, v := range vecs {
		assert.Len(t, v, 3)
	}
}

func TestGenerateSpaceDeterministic(t *testing.T) {
	a := NewRNG(7).GenerateSpace(10, 4)
	b := NewRNG(7).GenerateSpace(10, 4)

	assert.Len(t, a, 40)
	assert.Equal(t, a, b)
}
