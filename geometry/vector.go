package geometry

import (
	"errors"
	"math"
)

// ErrZeroVector is returned when a zero-length vector is normalized.
var ErrZeroVector = errors.New("cannot normalize a zero-length vector")

// Vector is a 2D direction/magnitude. Invert, Oppose and Normalize modify the
// vector in place so they can be chained.
type Vector struct {
	X float64
	Y float64
}

// Invert swaps the two components.
func (v *Vector) Invert() *Vector {
	v.X, v.Y = v.Y, v.X
	return v
}

// Oppose negates the second component.
func (v *Vector) Oppose() *Vector {
	v.Y = -v.Y
	return v
}

// Normalize scales the vector to unit length. The vector is left untouched and
// ErrZeroVector is returned if its magnitude is zero.
func (v *Vector) Normalize() error {
	magnitude := v.Magnitude()
	if magnitude == 0 || math.IsNaN(magnitude) {
		return ErrZeroVector
	}

	v.X /= magnitude
	v.Y /= magnitude

	return nil
}

// Magnitude calculates the magnitude (length) of a vector
func (v Vector) Magnitude() float64 {
	return distance(v.X, v.Y)
}

// DotProduct calculates the dot product of two vectors
func (v Vector) DotProduct(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

func (v Vector) Scale(factor float64) Vector {
	return Vector{v.X * factor, v.Y * factor}
}

// Angle returns the direction of the vector in radians, in the same
// convention Move uses.
func (v Vector) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}
