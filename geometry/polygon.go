package geometry

import (
	"fmt"
	"math"
)

// Polygon is a convex shape backed by a closed loop of vertices. Side i joins
// vertex i to vertex i+1 (the last vertex joins the first) and axis i is the
// normal of side i. The sides and axes are fixed at construction; their
// directions follow the vertices as the polygon moves and rotates.
type Polygon struct {
	vertices []Vertex
	sides    []Side
	axes     []Axis
}

// NewPolygon builds a polygon from at least three points. Consecutive points
// must be distinct and the polygon must enclose a non-zero area. Points given
// counter-clockwise (in screen space, y down) are reversed so that every axis
// is an outward normal.
func NewPolygon(points []Vertex) (*Polygon, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewVertices, len(points))
	}

	vertices := make([]Vertex, len(points))
	copy(vertices, points)

	area := signedArea(vertices)
	if area == 0 || math.IsNaN(area) {
		return nil, ErrZeroArea
	}
	if area < 0 {
		for i, j := 0, len(vertices)-1; i < j; i, j = i+1, j-1 {
			vertices[i], vertices[j] = vertices[j], vertices[i]
		}
	}

	p := &Polygon{
		vertices: vertices,
		sides:    make([]Side, len(vertices)),
		axes:     make([]Axis, len(vertices)),
	}

	for i := range p.vertices {
		side := Side{
			vertex1: &p.vertices[i],
			vertex2: &p.vertices[(i+1)%len(p.vertices)],
		}
		if side.Length() == 0 {
			return nil, fmt.Errorf("%w: side %d", ErrDegenerateSide, i)
		}
		p.sides[i] = side
		p.axes[i] = NewAxis(side)
	}

	return p, nil
}

// signedArea is twice the shoelace area; positive for clockwise loops in
// screen space.
func signedArea(vertices []Vertex) float64 {
	var sum float64
	for i, v := range vertices {
		next := vertices[(i+1)%len(vertices)]
		sum += v.X*next.Y - next.X*v.Y
	}
	return sum
}

func (p *Polygon) Move(d, dir float64) {
	for i := range p.vertices {
		p.vertices[i].Move(d, dir)
	}
}

func (p *Polygon) Rotate(x, y, dir float64) {
	for i := range p.vertices {
		p.vertices[i].Rotate(x, y, dir)
	}
}

// Project returns the range of the vertices' dot products with axis.
func (p *Polygon) Project(axis Vector) Projection {
	min := axis.DotProduct(Vector(p.vertices[0]))
	max := min

	for _, v := range p.vertices[1:] {
		dist := axis.DotProduct(Vector(v))
		if dist < min {
			min = dist
		}
		if dist > max {
			max = dist
		}
	}

	return Projection{Min: min, Max: max}
}

func (p *Polygon) Axes() []Axis {
	return p.axes
}

func (p *Polygon) Sides() []Side {
	return p.sides
}

// Vertices returns a copy of the vertex loop, e.g. for drawing.
func (p *Polygon) Vertices() []Vertex {
	vertices := make([]Vertex, len(p.vertices))
	copy(vertices, p.vertices)
	return vertices
}

func (p *Polygon) Bounds() Rect {
	minX, minY := p.vertices[0].X, p.vertices[0].Y
	maxX, maxY := minX, minY

	for _, v := range p.vertices[1:] {
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

func (p *Polygon) Width() float64 {
	return p.Bounds().Width
}

func (p *Polygon) Height() float64 {
	return p.Bounds().Height
}

// X is the left edge of the bounding box.
func (p *Polygon) X() float64 {
	return p.Bounds().X
}

// Y is the top edge of the bounding box.
func (p *Polygon) Y() float64 {
	return p.Bounds().Y
}

// SetX assigns x to every vertex. Unlike SetY this does not translate the
// polygon: all vertices collapse onto one vertical line, after which Collide
// reports ErrDegenerateSide for this polygon.
func (p *Polygon) SetX(x float64) {
	for i := range p.vertices {
		p.vertices[i].X = x
	}
}

// SetY translates the polygon vertically so that its first vertex lands on y.
func (p *Polygon) SetY(y float64) {
	dy := y - p.vertices[0].Y
	for i := range p.vertices {
		p.vertices[i].Y += dy
	}
}

// Center is the mean of the vertices.
func (p *Polygon) Center() (float64, float64) {
	var x, y float64
	for _, v := range p.vertices {
		x += v.X
		y += v.Y
	}
	n := float64(len(p.vertices))
	return x / n, y / n
}
