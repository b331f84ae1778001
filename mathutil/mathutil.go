// Package mathutil provides interpolation, range mapping and gamma helpers
// for sensor scaling and light output curves.
package mathutil

import "math"

// Number constrains Remap to ordinary numeric types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Lerp interpolates linearly between start and end; completion 0 yields
// start, 1 yields end. Values outside [0,1] extrapolate.
func Lerp(completion, start, end float64) float64 {
	return start + (end-start)*completion
}

// Remap maps value from the range [inMin, inMax] onto [outMin, outMax].
func Remap[T Number](value, inMin, inMax, outMin, outMax T) T {
	return (value-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}

// Clamp limits v to [lo, hi].
func Clamp[T Number](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// GammaCorrect applies gamma to a channel value in [0,1]. A gamma of 0
// passes the value through.
func GammaCorrect(value, gamma float64) float64 {
	if value <= 0 {
		return 0
	}
	if gamma <= 0 {
		return value
	}
	return math.Pow(value, gamma)
}

// GammaUncorrect reverts GammaCorrect.
func GammaUncorrect(value, gamma float64) float64 {
	if value <= 0 {
		return 0
	}
	if gamma <= 0 {
		return value
	}
	return math.Pow(value, 1/gamma)
}
