package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollideSeparatedSquares(t *testing.T) {
	a := mustSquare(t, 0, 0, 10)
	b := mustSquare(t, 20, 20, 10)

	mtv, ok, err := Collide(a, b)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, Vector{}, mtv)
}

func TestCollideOverlappingSquares(t *testing.T) {
	a := mustSquare(t, 0, 0, 10)
	b := mustSquare(t, 5, 5, 10)

	mtv, ok, err := Collide(a, b)
	require.NoError(t, err)
	require.True(t, ok)
	require.InDelta(t, 5, mtv.Magnitude(), 1e-9)
	// the right-hand normal of a is the first axis with overlap 5
	require.InDelta(t, -5, mtv.X, 1e-9)
	require.InDelta(t, 0, mtv.Y, 1e-9)

	mtv, ok, err = Collide(b, a)
	require.NoError(t, err)
	require.True(t, ok)
	require.InDelta(t, 5, mtv.Magnitude(), 1e-9)
	require.InDelta(t, 0, mtv.X, 1e-9)
	require.InDelta(t, 5, mtv.Y, 1e-9)
}

func TestCollideSymmetry(t *testing.T) {
	type pair struct {
		name string
		a, b func(t *testing.T) Shape
	}
	square := func(x, y, s float64) func(t *testing.T) Shape {
		return func(t *testing.T) Shape { return mustSquare(t, x, y, s) }
	}
	quad := func(x, y, w, h float64) func(t *testing.T) Shape {
		return func(t *testing.T) Shape {
			q, err := NewQuadrilateral(x, y, w, h)
			require.NoError(t, err)
			return q
		}
	}
	triangle := func(dx, dy float64) func(t *testing.T) Shape {
		return func(t *testing.T) Shape {
			p, err := NewPolygon([]Vertex{{dx, dy}, {dx + 10, dy}, {dx + 5, dy + 8}})
			require.NoError(t, err)
			return p
		}
	}

	tests := []struct {
		pair
		collides bool
	}{
		{pair{"separated squares", square(0, 0, 10), square(20, 20, 10)}, false},
		{pair{"overlapping squares", square(0, 0, 10), square(5, 5, 10)}, true},
		{pair{"wide quad and square", quad(0, 0, 20, 10), square(15, 5, 10)}, true},
		{pair{"squares side by side", square(0, 0, 10), square(11, 0, 10)}, false},
		{pair{"overlapping triangles", triangle(0, 0), triangle(6, 2)}, true},
		{pair{"distant triangles", triangle(0, 0), triangle(50, 0)}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b := tc.a(t), tc.b(t)

			_, ab, err := Collide(a, b)
			require.NoError(t, err)
			_, ba, err := Collide(b, a)
			require.NoError(t, err)

			require.Equal(t, tc.collides, ab)
			require.Equal(t, ab, ba)
		})
	}
}

func TestCollideWideQuadMagnitude(t *testing.T) {
	q, err := NewQuadrilateral(0, 0, 20, 10)
	require.NoError(t, err)
	s := mustSquare(t, 15, 5, 10)

	mtv, ok, err := Collide(q, s)
	require.NoError(t, err)
	require.True(t, ok)
	require.InDelta(t, 5, mtv.Magnitude(), 1e-9)
}

func TestCollideIsIdempotent(t *testing.T) {
	a := mustSquare(t, 0, 0, 10)
	b := mustSquare(t, 5, 5, 10)
	before := a.Vertices()

	mtv1, ok1, err1 := Collide(a, b)
	mtv2, ok2, err2 := Collide(a, b)

	require.Equal(t, mtv1, mtv2)
	require.Equal(t, ok1, ok2)
	require.Equal(t, err1, err2)
	require.Equal(t, before, a.Vertices())
}

func TestCollideCircleUsesOtherAxes(t *testing.T) {
	s := mustSquare(t, 0, 0, 10)

	c, err := NewCircle(12, 5, 3)
	require.NoError(t, err)

	mtv, ok, err := Collide(c, s)
	require.NoError(t, err)
	require.True(t, ok)
	// pushed right until the circle touches the square's right edge
	require.InDelta(t, 1, mtv.X, 1e-9)
	require.InDelta(t, 0, mtv.Y, 1e-9)

	far, err := NewCircle(20, 5, 3)
	require.NoError(t, err)

	_, ok, err = Collide(far, s)
	require.NoError(t, err)
	require.False(t, ok)
	_, ok, err = Collide(s, far)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCollideTwoCirclesHasNoAxes(t *testing.T) {
	a, err := NewCircle(0, 0, 5)
	require.NoError(t, err)
	b, err := NewCircle(3, 0, 5)
	require.NoError(t, err)

	_, ok, err := Collide(a, b)
	require.ErrorIs(t, err, ErrNoAxes)
	require.False(t, ok)

	// the polygon approximation does have axes
	p, err := NewCirclePolygon(8, 0, 5)
	require.NoError(t, err)
	mtv, ok, err := Collide(a, p)
	require.NoError(t, err)
	require.True(t, ok)
	require.Greater(t, mtv.Magnitude(), 0.0)
}

func TestCollideFollowsMovement(t *testing.T) {
	a := mustSquare(t, 0, 0, 10)
	b := mustSquare(t, 20, 0, 10)

	_, ok, err := Collide(a, b)
	require.NoError(t, err)
	require.False(t, ok)

	MoveRight(a, 15)
	mtv, ok, err := Collide(a, b)
	require.NoError(t, err)
	require.True(t, ok)
	require.InDelta(t, 5, mtv.Magnitude(), 1e-9)
	require.InDelta(t, -5, mtv.X, 1e-9)
}
