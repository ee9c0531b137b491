package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFastRand_Float64Range(t *testing.T) {
	r := NewFastRand(0) // zero seed is remapped
	for i := 0; i < 10000; i++ {
		v := r.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestFastRand_Deterministic(t *testing.T) {
	a, b := NewFastRand(99), NewFastRand(99)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestRandRange(t *testing.T) {
	assert.Equal(t, -15.0, RandRange(ConstSource(0), -15, 18))
	assert.InDelta(t, 1.5, RandRange(ConstSource(0.5), 1, 2), 1e-12)
	assert.Equal(t, 3.0, RandRange(ConstSource(0.7), 3, 3), "empty range returns lower bound")
}

func TestRandIntn(t *testing.T) {
	assert.Equal(t, 0, RandIntn(ConstSource(0), 59))
	assert.Equal(t, 58, RandIntn(ConstSource(0.9999999), 59))
	assert.Equal(t, 0, RandIntn(ConstSource(0.5), 0))
}

func TestSequenceSource_Cycles(t *testing.T) {
	s := NewSequenceSource(0.1, 0.2)
	assert.Equal(t, 0.1, s.Float64())
	assert.Equal(t, 0.2, s.Float64())
	assert.Equal(t, 0.1, s.Float64())
	assert.Equal(t, 3, s.Draws)
}
