package xmath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTriangular(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, Triangular(-3))
	require.Equal(t, 0, Triangular(0))
	require.Equal(t, 1, Triangular(1))
	require.Equal(t, 6, Triangular(3))
	require.Equal(t, 5050, Triangular(100))
}

func TestBlockOf(t *testing.T) {
	t.Parallel()

	want := []int{0, 1, 1, 2, 2, 2, 3, 3, 3, 3, 4}
	for i, b := range want {
		require.Equal(t, b, BlockOf(i), "BlockOf(%d)", i)
	}
}

func TestLocate_RoundTrip(t *testing.T) {
	t.Parallel()

	for i := 0; i <= 20_000; i++ {
		b, j := Locate(i)
		require.GreaterOrEqual(t, j, 0)
		require.LessOrEqual(t, j, b, "offset %d outside block %d", j, b)
		require.Equal(t, i, Triangular(b)+j)
	}
}

func TestBlockOf_LargeBoundaries(t *testing.T) {
	t.Parallel()

	for _, b := range []int{1 << 20, 1<<26 + 3, 2_000_000_000} {
		first := Triangular(b)
		require.Equal(t, b, BlockOf(first))
		require.Equal(t, b-1, BlockOf(first-1))
		require.Equal(t, b, BlockOf(first+b))
		require.Equal(t, b+1, BlockOf(first+b+1))
	}
}
