// Package intutils provides utilities for working with ints
package intutils

// Clip clips an integer to within a minimum and maximum value.
// If the integer exceeds max, then the function returns the max
// If min exceeds the integer, then the function returns the min
func Clip(value, min, max int) int {
	if value > max {
		return max
	}
	if value < min {
		return min
	}
	return value
}

// Min calculates and returns the minimum integer in a list
func Min(ints ...int) int {
	min := ints[0]
	for _, val := range ints {
		if val < min {
			min = val
		}
	}
	return min
}

// Max calculates and returns the maximum int in a list
func Max(ints ...int) int {
	max := ints[0]
	for _, val := range ints {
		if val > max {
			max = val
		}
	}
	return max
}

// MaxAbs returns the maximum absolute value in a list of ints
func MaxAbs(ints ...int) int {
	max := 0
	for _, val := range ints {
		if val < 0 {
			val = -val
		}
		if val > max {
			max = val
		}
	}
	return max
}
