package vmath

import "math"

// Probability returns the chance that a Poisson process with the given
// average interval fires at least once during dt: 1 - e^(-dt/avg)
func Probability(averageInterval, dt float64) float64 {
	if averageInterval <= 0 || dt <= 0 {
		return 0
	}
	return 1 - math.Exp(-dt/averageInterval)
}

// Occurs draws once from src and reports whether an event happened in dt
// Non-positive dt or interval never fires and consumes no draw
func Occurs(src Source, averageInterval, dt float64) bool {
	p := Probability(averageInterval, dt)
	if p <= 0 {
		return false
	}
	return src.Float64() < p
}
