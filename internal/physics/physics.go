// Package physics provides the distance and overlap tests used for collisions.
package physics

import "math"

// PixelsPerSize converts an object's size into a collision radius in pixels.
const PixelsPerSize = 30.0

// Distance calculates the Euclidean distance between two integer points.
func Distance(x1, y1, x2, y2 int) float64 {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	return math.Sqrt(dx*dx + dy*dy)
}

// Overlap reports whether two objects of the given sizes are close enough
// to touch: their distance is below PixelsPerSize times the summed sizes.
func Overlap(x1, y1 int, size1 float64, x2, y2 int, size2 float64) bool {
	return Distance(x1, y1, x2, y2) < PixelsPerSize*(size1+size2)
}

// AbsInt returns |v|.
func AbsInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
