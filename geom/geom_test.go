package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPositionOrdering(t *testing.T) {
	require.True(t, At(0, 5).Before(At(1, 0)))
	require.True(t, At(1, 0).Before(At(1, 1)))
	require.False(t, At(1, 1).Before(At(1, 1)))
	require.False(t, At(2, 0).Before(At(1, 9)))
}

func TestPositionValid(t *testing.T) {
	require.True(t, At(0, 0).Valid())
	require.False(t, At(-1, 0).Valid())
	require.False(t, At(0, -1).Valid())
	require.Equal(t, "[1, 2]", At(1, 2).String())
}

func TestSizeCells(t *testing.T) {
	tests := []struct {
		size   Size
		width  int
		height int
	}{
		{Size{Width: 100, Height: 44}, 100, 44},
		{Size{Width: 10.2, Height: 2.5}, 11, 3},
		{Size{}, 1, 1},
		{Size{Width: -3, Height: 0.1}, 1, 1},
	}
	for _, tc := range tests {
		w, h := tc.size.Cells()
		if w != tc.width || h != tc.height {
			t.Fatalf("%v.Cells() = %d,%d, want %d,%d", tc.size, w, h, tc.width, tc.height)
		}
	}
}
