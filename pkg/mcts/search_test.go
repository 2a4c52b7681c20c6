package mcts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchErrors(t *testing.T) {
	t.Run("terminal root", func(t *testing.T) {
		tree := newNimTree(0)
		_, err := tree.Search(100)
		require.ErrorIs(t, err, ErrTerminalState, "no action exists in a finished game")
		require.EqualValues(t, 0, tree.RootVisits(), "no simulations may run on a terminal root")
		require.Equal(t, 1, tree.Size())
	})

	t.Run("zero budget without children", func(t *testing.T) {
		tree := newNimTree(5)
		_, err := tree.Search(0)
		require.ErrorIs(t, err, ErrNoSearch, "nothing to compare on a fresh tree")
	})

	t.Run("zero budget with children", func(t *testing.T) {
		tree := newNimTree(5)
		_, err := tree.Search(200)
		require.NoError(t, err)

		visits := tree.RootVisits()
		action, err := tree.Search(0)
		require.NoError(t, err, "previous results stay available at zero budget")
		require.Contains(t, []int8{1, 2}, action)
		require.Equal(t, visits, tree.RootVisits(), "zero budget must not simulate")
	})
}

func TestSearchBudgetIsExact(t *testing.T) {
	tree := newNimTree(12)

	_, err := tree.Search(100)
	require.NoError(t, err)
	require.EqualValues(t, 100, tree.RootVisits())

	_, err = tree.Search(50)
	require.NoError(t, err)
	require.EqualValues(t, 150, tree.RootVisits(), "budgets accumulate, no simulation lost or duplicated")

	require.LessOrEqual(t, tree.Size(), 151, "each simulation grows the tree by at most one node")
	checkInvariants(t, tree)
}

func TestSearchTreeInvariants(t *testing.T) {
	tree := newNimTree(15)
	for i := 0; i < 5; i++ {
		_, err := tree.Search(200)
		require.NoError(t, err)
		checkInvariants(t, tree)
	}
}

func TestSearchFindsWinningMove(t *testing.T) {
	cases := []struct {
		name   string
		tokens int8
		want   int8
	}{
		{"take the last token", 1, 1},
		{"take both remaining", 2, 2},
		{"leave a multiple of three", 4, 1},
		{"leave a multiple of three from five", 5, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tree := newNimTree(tc.tokens)
			action, err := tree.Search(3000)
			require.NoError(t, err)
			require.Equal(t, tc.want, action, "optimal move in a solved position")
		})
	}
}

func TestSearchLostPositionStillMoves(t *testing.T) {
	// every move from 3 tokens loses against optimal play, the engine
	// must still recommend something legal
	tree := newNimTree(3)
	action, err := tree.Search(1000)
	require.NoError(t, err)
	require.Contains(t, []int8{1, 2}, action)
}

func TestSearchDeterministicUnderSeed(t *testing.T) {
	run := func(opts ...Option) (int8, map[int8]float64) {
		tree := newNimTree(10, opts...)
		action, err := tree.Search(500)
		require.NoError(t, err)
		return action, tree.Policy()
	}

	a1, p1 := run(WithSeed(7))
	a2, p2 := run(WithSeed(7))
	require.Equal(t, a1, a2, "same seed, same recommendation")
	require.Equal(t, p1, p2, "same seed, same visit distribution")

	a3, p3 := run(WithSeed(7), WithTieBreak(TieBreakRandom))
	a4, p4 := run(WithSeed(7), WithTieBreak(TieBreakRandom))
	require.Equal(t, a3, a4, "random tie-break is reproducible under a fixed seed")
	require.Equal(t, p3, p4)
}

func TestSearchBrokenGameModel(t *testing.T) {
	tree := NewSearchTree[brokenState, brokenPlayer, struct{}, int8](brokenState{})

	_, err := tree.Search(50)
	require.ErrorIs(t, err, ErrNoPossibleActions, "a non-terminal state without actions is a contract violation")
	require.Less(t, int(tree.RootVisits()), 50, "the failing cycle must not be backpropagated")
	checkInvariants(t, tree)
}
