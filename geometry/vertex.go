package geometry

import "math"

// Vertex is a mutable point owned by a single Polygon.
type Vertex struct {
	X float64
	Y float64
}

// Move translates the vertex by d along direction dir.
func (v *Vertex) Move(d, dir float64) {
	dx, dy := polar(d, dir)
	v.X += dx
	v.Y += dy
}

// Rotate turns the vertex about the pivot (x, y) by dir radians, keeping its
// distance from the pivot.
func (v *Vertex) Rotate(x, y, dir float64) {
	d := distanceBetween(v.X, v.Y, x, y)
	angle := math.Atan2(v.Y-y, v.X-x)

	dx, dy := polar(d, angle+dir)
	v.X = x + dx
	v.Y = y + dy
}
