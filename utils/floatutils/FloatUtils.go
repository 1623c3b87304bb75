// Package floatutils provides utilities for working with floats
package floatutils

import "math"

// Clip clips a floating point to within a minimum and maximum value.
// If the floating point exceeds max, then the function returns the max
// If min exceeds the floating point, then the function returns the min
func Clip(value, min, max float64) float64 {
	clipped := math.Min(value, max)
	return math.Max(clipped, min)
}

// Abs returns the element-wise absolute values of a slice of float64
func Abs(values []float64) []float64 {
	abs := make([]float64, len(values))
	for i, value := range values {
		abs[i] = math.Abs(value)
	}
	return abs
}
