package workload

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var allLists = []string{ArrayStack, ArrayQueue, ArrayDeque, DualArrayDeque, RootishArrayStack}

func TestRunner_AllListsMatchReference(t *testing.T) {
	t.Parallel()

	for _, position := range []string{PositionUniform, PositionFront, PositionBack, PositionMiddle, PositionEnds} {
		spec := Spec{
			Seed:       7,
			Operations: 4000,
			Position:   position,
			Mix:        Mix{Add: 5, Remove: 3, Get: 1, Set: 1},
		}
		runner := NewRunner(spec, zaptest.NewLogger(t))
		for _, name := range allLists {
			res, err := runner.Run(name)
			require.NoError(t, err, "%s/%s", position, name)
			require.Equal(t, name, res.Name)
			require.Equal(t, 4000, res.Operations)
			require.Positive(t, res.Len)
		}
	}
}

func TestRunner_SameSeedSameResult(t *testing.T) {
	t.Parallel()

	spec := Spec{Seed: 1, Operations: 2000, Position: PositionUniform, Mix: Mix{Add: 2, Remove: 1}}
	a, err := NewRunner(spec, nil).Run(ArrayDeque)
	require.NoError(t, err)
	b, err := NewRunner(spec, nil).Run(ArrayDeque)
	require.NoError(t, err)
	require.Equal(t, a, b)

	// Every list sees the same sequence, so they end with the same length.
	c, err := NewRunner(spec, nil).Run(RootishArrayStack)
	require.NoError(t, err)
	require.Equal(t, a.Len, c.Len)
}

func TestRunner_EndsAreCheap(t *testing.T) {
	t.Parallel()

	spec := Spec{Seed: 3, Operations: 50_000, Position: PositionEnds, Mix: Mix{Add: 3, Remove: 2}}
	runner := NewRunner(spec, nil)
	for _, name := range []string{ArrayQueue, ArrayDeque, DualArrayDeque} {
		res, err := runner.Run(name)
		require.NoError(t, err)
		require.Less(t, res.MovesPerOp(), 8.0, "%s: %+v", name, res.Stats)
	}
}

func TestRunner_UnknownList(t *testing.T) {
	t.Parallel()

	_, err := NewRunner(Spec{Operations: 1, Mix: Mix{Add: 1}}, nil).Run("linkedlist")
	require.ErrorIs(t, err, ErrUnknownList)
	require.False(t, IsAvailableList("linkedlist"))
	require.True(t, IsAvailableList(ArrayQueue))
	require.True(t, IsAvailablePosition(PositionEnds))
	require.False(t, IsAvailablePosition("random"))
}
