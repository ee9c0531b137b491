package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbability_Analytic(t *testing.T) {
	assert.InDelta(t, 1-math.Exp(-1), Probability(1.0, 1.0), 1e-12)
	assert.InDelta(t, 1-math.Exp(-0.016/0.05), Probability(0.05, 0.016), 1e-12)
}

func TestProbability_NonPositiveInputs(t *testing.T) {
	assert.Zero(t, Probability(1.0, 0))
	assert.Zero(t, Probability(1.0, -0.5))
	assert.Zero(t, Probability(0, 1.0))
	assert.Zero(t, Probability(-1, 1.0))
}

func TestOccurs_NoDrawOnZeroDelta(t *testing.T) {
	src := NewSequenceSource(0)
	assert.False(t, Occurs(src, 0.05, 0))
	assert.False(t, Occurs(src, 0.05, -1))
	assert.Equal(t, 0, src.Draws, "zero or negative dt must not consume randomness")
}

func TestOccurs_ThresholdAgainstDraw(t *testing.T) {
	p := Probability(1.0, 1.0)
	assert.True(t, Occurs(ConstSource(p-1e-9), 1.0, 1.0))
	assert.False(t, Occurs(ConstSource(p), 1.0, 1.0))
}

func TestOccurs_ConvergesToAnalytic(t *testing.T) {
	cases := []struct {
		name     string
		interval float64
		dt       float64
	}{
		{"field spawn at 60fps", 0.05, 1.0 / 60},
		{"churn at 20fps", 0.5, 0.05},
		{"long frame", 2.0, 1.5},
	}

	const samples = 200000
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rng := NewFastRand(12345)
			hits := 0
			for i := 0; i < samples; i++ {
				if Occurs(rng, tc.interval, tc.dt) {
					hits++
				}
			}
			want := Probability(tc.interval, tc.dt)
			got := float64(hits) / samples
			// 5 sigma of a binomial proportion
			tol := 5 * math.Sqrt(want*(1-want)/samples)
			require.InDelta(t, want, got, tol)
		})
	}
}
