package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVertexMove(t *testing.T) {
	tests := []struct {
		name         string
		dir          float64
		wantX, wantY float64
	}{
		{"right", DirectionRight, 10, 0},
		{"down", DirectionDown, 0, 10},
		{"left", DirectionLeft, -10, 0},
		{"up", DirectionUp, 0, -10},
		{"diagonal", math.Pi / 4, 10 / math.Sqrt2, 10 / math.Sqrt2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := Vertex{}
			v.Move(10, tc.dir)
			require.InDelta(t, tc.wantX, v.X, 1e-9)
			require.InDelta(t, tc.wantY, v.Y, 1e-9)
		})
	}
}

func TestVertexRotate(t *testing.T) {
	v := Vertex{X: 10, Y: 0}
	v.Rotate(0, 0, math.Pi/2)
	require.InDelta(t, 0, v.X, 1e-9)
	require.InDelta(t, 10, v.Y, 1e-9)

	// about an off-origin pivot, distance is preserved
	w := Vertex{X: 7, Y: 3}
	before := distanceBetween(w.X, w.Y, 2, 1)
	w.Rotate(2, 1, 1.234)
	require.InDelta(t, before, distanceBetween(w.X, w.Y, 2, 1), 1e-9)

	// full turn returns to the start
	w.Rotate(2, 1, 2*math.Pi-1.234)
	require.InDelta(t, 7, w.X, 1e-9)
	require.InDelta(t, 3, w.Y, 1e-9)
}

func TestSideAndAxis(t *testing.T) {
	a, b := Vertex{X: 0, Y: 0}, Vertex{X: 3, Y: 4}
	side := Side{vertex1: &a, vertex2: &b}
	require.Equal(t, 5.0, side.Length())
	require.Equal(t, a, side.Vertex1())
	require.Equal(t, b, side.Vertex2())

	c := Vertex{X: 10, Y: 0}
	axis := NewAxis(Side{vertex1: &a, vertex2: &c})
	v, err := axis.Vector()
	require.NoError(t, err)
	require.InDelta(t, 0, v.X, 1e-12)
	require.InDelta(t, -1, v.Y, 1e-12)

	// axis follows the live vertices
	c.Rotate(0, 0, math.Pi/2)
	v, err = axis.Vector()
	require.NoError(t, err)
	require.InDelta(t, 1, v.X, 1e-9)
	require.InDelta(t, 0, v.Y, 1e-9)

	c = a
	_, err = axis.Vector()
	require.ErrorIs(t, err, ErrDegenerateSide)
}
