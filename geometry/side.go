package geometry

// Side is an edge between two vertices of a polygon. It borrows the vertices
// so its geometry follows the polygon as it moves and rotates.
type Side struct {
	vertex1 *Vertex
	vertex2 *Vertex
}

func (s Side) Vertex1() Vertex {
	return *s.vertex1
}

func (s Side) Vertex2() Vertex {
	return *s.vertex2
}

// Length is the distance between the two vertices.
func (s Side) Length() float64 {
	return distanceBetween(s.vertex1.X, s.vertex1.Y, s.vertex2.X, s.vertex2.Y)
}

func (s Side) direction() Vector {
	return Vector{X: s.vertex2.X - s.vertex1.X, Y: s.vertex2.Y - s.vertex1.Y}
}

// Axis is a projection direction derived from a side. Its vector is computed
// from the live vertex positions on every call.
type Axis struct {
	side Side
}

// NewAxis returns the axis normal to side.
func NewAxis(side Side) Axis {
	return Axis{side: side}
}

// Vector returns the unit normal of the side: the side direction with its
// components swapped, the second negated, then normalized. For a clockwise
// polygon in screen space the normal points outward.
func (a Axis) Vector() (Vector, error) {
	v := a.side.direction()
	v.Invert().Oppose()
	if err := v.Normalize(); err != nil {
		return Vector{}, ErrDegenerateSide
	}
	return v, nil
}
