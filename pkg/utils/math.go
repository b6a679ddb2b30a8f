package utils

import "math"

// Clamp limits x to the closed range [lo, hi]. NaN becomes lo.
func Clamp(x, lo, hi float64) float64 {
	if math.IsNaN(x) || x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Round2 rounds x to two decimal places, half away from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
