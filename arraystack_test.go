package lists

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestArrayStack_Scenario(t *testing.T) {
	t.Parallel()

	a := MakeArrayStack[int]()
	require.NoError(t, a.Add(0, 3))
	require.NoError(t, a.Add(1, 5))
	requireContents(t, a, 3, 5)
	require.Equal(t, 2, a.Cap())

	old, ok := a.Set(1, 2)
	require.True(t, ok)
	require.Equal(t, 5, old)
	requireContents(t, a, 3, 2)

	require.NoError(t, a.Add(0, -1))
	requireContents(t, a, -1, 3, 2)
	require.Equal(t, 4, a.Cap())

	require.NoError(t, a.Add(2, 5))
	requireContents(t, a, -1, 3, 5, 2)
	require.Equal(t, 4, a.Cap())

	require.NoError(t, a.Add(4, 10))
	requireContents(t, a, -1, 3, 5, 2, 10)
	require.Equal(t, 8, a.Cap())

	requireRemove(t, a, 3, 2)
	requireRemove(t, a, 1, 3)
	requireContents(t, a, -1, 5, 10)
	require.Equal(t, 8, a.Cap())

	requireRemove(t, a, 2, 10)
	requireContents(t, a, -1, 5)
	require.Equal(t, 4, a.Cap())

	requireRemove(t, a, 0, -1)
	requireRemove(t, a, 0, 5)
	require.Equal(t, 0, a.Len())
	require.Equal(t, 1, a.Cap())
	_, ok = a.Get(0)
	require.False(t, ok)

	require.NoError(t, a.Add(0, 7))
	requireContents(t, a, 7)
}

func TestArrayStack_OutOfRange(t *testing.T) {
	t.Parallel()

	a := CopySliceToArrayStack([]string{"a", "b"})
	before := a.MakeSliceCopy()

	for _, i := range []int{-1, 2, 100} {
		_, ok := a.Get(i)
		require.False(t, ok, "Get(%d)", i)
		_, ok = a.Set(i, "z")
		require.False(t, ok, "Set(%d)", i)
		_, ok = a.Remove(i)
		require.False(t, ok, "Remove(%d)", i)
	}

	err := a.Add(3, "z")
	require.True(t, errors.Is(err, ErrIndexOutOfRange))
	require.EqualError(t, err, "index out of range: index 3 with length 2")
	require.ErrorIs(t, a.Add(-1, "z"), ErrIndexOutOfRange)

	if diff := cmp.Diff(before, a.MakeSliceCopy()); diff != "" {
		t.Errorf("contents changed (-want +got):\n%s", diff)
	}
	require.Equal(t, 2, a.Cap())
}

func TestArrayStack_CopySlice(t *testing.T) {
	t.Parallel()

	s := []int{1, 2, 3}
	a := CopySliceToArrayStack(s)
	s[0] = 100
	requireContents(t, a, 1, 2, 3)
	require.Equal(t, 3, a.Cap())

	empty := CopySliceToArrayStack[int](nil)
	require.Equal(t, 0, empty.Len())
	require.Equal(t, 1, empty.Cap())
}

func TestArrayStack_ClearsRemovedSlots(t *testing.T) {
	t.Parallel()

	a := MakeArrayStack[*int]()
	for i := range 4 {
		require.NoError(t, a.Add(i, &i))
	}
	_, ok := a.Remove(3)
	require.True(t, ok)
	require.Nil(t, a.buf[3])
}

func TestArrayStack_Nil(t *testing.T) {
	t.Parallel()

	var a *ArrayStack[int]
	require.Equal(t, 0, a.Len())
}
