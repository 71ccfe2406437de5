package geometry

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrTooFewVertices    = errors.New("polygon needs at least 3 vertices")
	ErrDegenerateSide    = errors.New("polygon has a zero-length side")
	ErrZeroArea          = errors.New("polygon has zero area")
	ErrNonPositiveRadius = errors.New("circle radius must be positive")

	// ErrNoAxes is returned by Collide when neither shape contributes an axis,
	// which is the case for two Circles. Such pairs cannot be tested with SAT;
	// use NewCirclePolygon for one of them instead.
	ErrNoAxes = errors.New("no separating axis candidates")
)

// Shape is a convex shape that can be tested for collision with Collide.
type Shape interface {
	// Axes returns the shape's own separating axis candidates.
	Axes() []Axis
	// Project returns the interval the shape covers along the unit vector axis.
	Project(axis Vector) Projection
	// Move translates the shape by d along direction dir (radians).
	Move(d, dir float64)
	// Rotate turns the shape about the pivot (x, y) by dir radians.
	Rotate(x, y, dir float64)
	// Bounds returns the axis-aligned bounding box.
	Bounds() Rect
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Directions for Move, in screen space where y grows downward.
const (
	DirectionUp    = 3 * math.Pi / 2
	DirectionDown  = math.Pi / 2
	DirectionLeft  = -math.Pi
	DirectionRight = 0
)

func MoveUp(s Shape, d float64)    { s.Move(d, DirectionUp) }
func MoveDown(s Shape, d float64)  { s.Move(d, DirectionDown) }
func MoveLeft(s Shape, d float64)  { s.Move(d, DirectionLeft) }
func MoveRight(s Shape, d float64) { s.Move(d, DirectionRight) }

// Collide tests a and b with the separating axis theorem. Every axis of a and
// then every axis of b is tried; the first axis on which the projections do not
// overlap ends the search and reports no collision. Otherwise the returned
// vector is the minimum translation vector: the smallest overlap found (the
// first one on ties) along the negated winning axis.
//
// Neither shape is modified. ErrNoAxes is returned when both shapes have no
// axes, and ErrDegenerateSide when an axis cannot be normalized.
func Collide(a, b Shape) (Vector, bool, error) {
	axesA := a.Axes()
	axesB := b.Axes()
	if len(axesA)+len(axesB) == 0 {
		return Vector{}, false, ErrNoAxes
	}

	var (
		best    Vector
		minimum = math.Inf(1)
	)

	for _, axes := range [][]Axis{axesA, axesB} {
		for i, axis := range axes {
			v, err := axis.Vector()
			if err != nil {
				return Vector{}, false, fmt.Errorf("axis %d: %w", i, err)
			}

			overlap := a.Project(v).Overlap(b.Project(v))
			if overlap < 0 {
				return Vector{}, false, nil
			}
			if overlap < minimum {
				best = v
				minimum = overlap
			}
		}
	}

	return Vector{X: -minimum * best.X, Y: -minimum * best.Y}, true, nil
}
