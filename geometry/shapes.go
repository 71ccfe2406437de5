package geometry

import (
	"math"
)

// circleStep is the angular distance between sampled vertices of
// NewCirclePolygon, giving 63 vertices.
const circleStep = 0.1

// NewQuadrilateral returns the axis-aligned rectangle with top-left corner
// (x, y), wound clockwise from the top-left corner.
func NewQuadrilateral(x, y, width, height float64) (*Polygon, error) {
	return NewPolygon([]Vertex{
		{X: x, Y: y},
		{X: x + width, Y: y},
		{X: x + width, Y: y + height},
		{X: x, Y: y + height},
	})
}

func NewSquare(x, y, s float64) (*Polygon, error) {
	return NewQuadrilateral(x, y, s, s)
}

// NewCirclePolygon approximates the circle centred on (x, y) with a polygon
// so that it contributes its own axes to Collide.
func NewCirclePolygon(x, y, r float64) (*Polygon, error) {
	if !(r > 0) {
		return nil, ErrNonPositiveRadius
	}

	n := int(math.Ceil(2 * math.Pi / circleStep))
	vertices := make([]Vertex, 0, n)
	for k := 0; k < n; k++ {
		angle := float64(k) * circleStep
		vertices = append(vertices, Vertex{X: x + r*math.Cos(angle), Y: y + r*math.Sin(angle)})
	}

	return NewPolygon(vertices)
}
