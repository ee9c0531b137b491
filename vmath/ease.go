package vmath

import "math"

// Ease identifies an easing curve applied to normalized progress
type Ease uint8

const (
	EaseLinear Ease = iota
	EaseQuadOut
)

// Apply maps t in [0,1] through the curve, input is clamped
func (e Ease) Apply(t float64) float64 {
	t = Clamp01(t)
	switch e {
	case EaseQuadOut:
		return QuadOut(t)
	default:
		return t
	}
}

// QuadOut decelerates: fast start, slow finish
func QuadOut(t float64) float64 {
	return -t * (t - 2)
}

// DepthScale maps simulated depth to a parallax multiplier: 10^(depth/10)
func DepthScale(depth float64) float64 {
	return math.Pow(10, depth/10)
}
