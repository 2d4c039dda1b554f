package util

import (
	"fmt"
	"math"
)

// FormatHours renders whole hour values without a decimal point and
// fractional values with exactly one decimal digit (8 -> "8", 7.5 -> "7.5").
func FormatHours(hours float64) string {
	if hours == math.Trunc(hours) {
		return fmt.Sprintf("%d", int64(hours))
	}
	return fmt.Sprintf("%.1f", hours)
}
