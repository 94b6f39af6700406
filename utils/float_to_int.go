// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 converts a normalized sample in [-1, 1] to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// TruncToInt16 drops the fractional part of x (rounding toward zero) and
// saturates the result to the int16 range. NaN maps to 0.
func TruncToInt16(x float32) int16 {
	switch {
	case math.IsNaN(float64(x)):
		return 0
	case x >= math.MaxInt16:
		return math.MaxInt16
	case x <= math.MinInt16:
		return math.MinInt16
	}

	return int16(x)
}
