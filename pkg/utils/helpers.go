package utils

import "math"

// Round rounds v to the given number of decimal places
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// Percent returns 100*part/total rounded to one decimal, or 0 when total is zero
func Percent(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return Round(float64(part)*100/float64(total), 1)
}

// ClampInt bounds v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MinInt returns the smaller of a and b
func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
