package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProjectionOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Projection
		expected float64
	}{
		{"partial overlap", Projection{0, 5}, Projection{3, 8}, 2},
		{"partial overlap reversed", Projection{3, 8}, Projection{0, 5}, 8},
		{"separated", Projection{0, 5}, Projection{10, 15}, -1},
		{"separated reversed", Projection{10, 15}, Projection{0, 5}, -1},
		{"touching", Projection{0, 5}, Projection{5, 10}, 0},
		{"contained in other", Projection{2, 5}, Projection{0, 10}, 5},
		// only the receiver's endpoints are tested
		{"containing other", Projection{0, 10}, Projection{2, 5}, -1},
		{"identical", Projection{1, 4}, Projection{1, 4}, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.a.Overlap(tc.b))
		})
	}
}

func TestProjectionIsOverlapping(t *testing.T) {
	require.True(t, Projection{0, 5}.IsOverlapping(Projection{3, 8}))
	require.True(t, Projection{3, 8}.IsOverlapping(Projection{0, 5}))
	require.False(t, Projection{0, 5}.IsOverlapping(Projection{6, 8}))
	require.False(t, Projection{0, 10}.IsOverlapping(Projection{2, 5}))
	require.True(t, Projection{2, 5}.IsOverlapping(Projection{0, 10}))
}

func TestNewProjectionOrdersBounds(t *testing.T) {
	require.Equal(t, Projection{Min: 1, Max: 5}, NewProjection(5, 1))
	require.Equal(t, Projection{Min: -2, Max: 3}, NewProjection(-2, 3))
}
