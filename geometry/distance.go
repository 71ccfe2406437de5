package geometry

import (
	"math"
)

// distance returns the Euclidean norm of (dx, dy).
func distance(dx, dy float64) float64 {
	return math.Hypot(dx, dy)
}

// distanceBetween returns the distance between (x1, y1) and (x2, y2).
func distanceBetween(x1, y1, x2, y2 float64) float64 {
	return distance(x2-x1, y2-y1)
}

// polar returns the offset of travelling d along direction dir (radians).
// Screen space: increasing y points down.
func polar(d, dir float64) (float64, float64) {
	return d * math.Cos(dir), d * math.Sin(dir)
}
