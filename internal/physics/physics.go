// Package physics provides proximity tests and smoothing utilities.
package physics

import "math"

// WithinBox checks if a point lies strictly inside the axis-aligned square
// of the given half extent centered on (cx, cy).
func WithinBox(px, py, cx, cy, halfExtent float64) bool {
	return math.Abs(px-cx) < halfExtent && math.Abs(py-cy) < halfExtent
}

// Approach moves current toward target by the given fraction of the gap.
// Applied once per frame this is an exponential low-pass filter.
func Approach(current, target, factor float64) float64 {
	return current + (target-current)*factor
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
