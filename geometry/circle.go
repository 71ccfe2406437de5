package geometry

import "fmt"

// Circle is a shape given by a centre and a radius. It projects analytically
// and has no axes of its own, so a collision test against a Circle relies on
// the other shape's axes only.
type Circle struct {
	x float64
	y float64
	r float64
}

func NewCircle(x, y, r float64) (*Circle, error) {
	if !(r > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrNonPositiveRadius, r)
	}
	return &Circle{x: x, y: y, r: r}, nil
}

func (c *Circle) Move(d, dir float64) {
	dx, dy := polar(d, dir)
	c.x += dx
	c.y += dy
}

// Rotate is a no-op: a circle is rotation symmetric.
func (c *Circle) Rotate(x, y, dir float64) {}

func (c *Circle) Project(axis Vector) Projection {
	min := axis.DotProduct(Vector{X: c.x, Y: c.y}) - c.r
	return Projection{Min: min, Max: min + 2*c.r}
}

func (c *Circle) Axes() []Axis {
	return nil
}

func (c *Circle) Bounds() Rect {
	return Rect{X: c.x - c.r, Y: c.y - c.r, Width: 2 * c.r, Height: 2 * c.r}
}

func (c *Circle) X() float64 { return c.x }
func (c *Circle) Y() float64 { return c.y }
func (c *Circle) R() float64 { return c.r }

func (c *Circle) SetX(x float64) { c.x = x }
func (c *Circle) SetY(y float64) { c.y = y }
