package lists

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrayDeque_Scenario(t *testing.T) {
	t.Parallel()

	d := MakeArrayDeque[int]()
	require.NoError(t, d.Add(0, 3))
	require.NoError(t, d.Add(1, 5))
	require.NoError(t, d.Add(0, 2))
	require.NoError(t, d.Add(2, 6))
	require.NoError(t, d.Add(0, 8))
	requireContents(t, d, 8, 2, 3, 6, 5)

	old, ok := d.Set(1, 7)
	require.True(t, ok)
	require.Equal(t, 2, old)
	requireContents(t, d, 8, 7, 3, 6, 5)

	requireRemove(t, d, 2, 3)
	requireContents(t, d, 8, 7, 6, 5)
	requireRemove(t, d, 0, 8)
	requireContents(t, d, 7, 6, 5)
}

func TestArrayDeque_Wraparound(t *testing.T) {
	t.Parallel()

	d := MakeArrayDeque[int]()
	for i := range 5 {
		require.NoError(t, d.Add(d.Len(), i))
	}
	require.Equal(t, 8, d.Cap())

	// Adding at the front moves the head back across slot 0.
	require.NoError(t, d.Add(0, -1))
	require.Equal(t, 7, d.j)
	require.NoError(t, d.Add(0, -2))
	require.Equal(t, 6, d.j)
	require.NoError(t, d.Add(d.Len(), 5))
	require.Equal(t, 8, d.Cap())
	requireContents(t, d, -2, -1, 0, 1, 2, 3, 4, 5)

	requireRemove(t, d, 1, -1)
	require.Equal(t, 7, d.j)
	requireContents(t, d, -2, 0, 1, 2, 3, 4, 5)

	require.NoError(t, d.Add(d.Len(), 6))
	require.Equal(t, 8, d.Cap())
	require.NoError(t, d.Add(d.Len(), 7))
	require.Equal(t, 16, d.Cap())
	require.Equal(t, 0, d.j, "a resize re-linearizes from slot 0")
	requireContents(t, d, -2, 0, 1, 2, 3, 4, 5, 6, 7)
}

func TestArrayDeque_ShiftsShorterSide(t *testing.T) {
	t.Parallel()

	d := CopySliceToArrayDeque(make([]int, 100))
	require.NoError(t, d.Add(100, 0)) // grows, moving 100 elements
	base := d.Stats().Moves
	require.EqualValues(t, 100, base)

	require.NoError(t, d.Add(3, 1))
	require.EqualValues(t, 3, d.Stats().Moves-base)

	base = d.Stats().Moves
	require.NoError(t, d.Add(d.Len()-2, 1))
	require.EqualValues(t, 2, d.Stats().Moves-base)

	base = d.Stats().Moves
	requireRemove(t, d, 3, 1)
	require.EqualValues(t, 3, d.Stats().Moves-base)

	base = d.Stats().Moves
	requireRemove(t, d, d.Len()-3, 1)
	require.EqualValues(t, 2, d.Stats().Moves-base)
}

func TestArrayDeque_Nil(t *testing.T) {
	t.Parallel()

	var d *ArrayDeque[int]
	require.Equal(t, 0, d.Len())
}
