package vmath

// Scalar helpers shared by the interpolation and lifecycle code

// Clamp01 bounds v to [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lerp returns a*(1-t) + b*t
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}
