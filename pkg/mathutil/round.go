// Package mathutil provides rounding and percentage helpers shared across
// the affordability engine.
package mathutil

import "math"

// Round rounds a value to the nearest whole currency unit.
func Round(value float64) float64 {
	return math.Round(value)
}

// RoundTenth rounds a value to one decimal place. Used for ratios and
// percentages reported to the user.
func RoundTenth(value float64) float64 {
	return math.Round(value*10) / 10
}

// Percentage returns part as a percentage of whole, or 0 when whole is 0.
func Percentage(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}

// Clamp restricts value to the inclusive range [lower, upper].
func Clamp(value, lower, upper float64) float64 {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}

// WithinTolerance reports whether two values differ by no more than tolerance.
func WithinTolerance(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
