package mcts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNode(t *testing.T) {
	t.Run("mid-game", func(t *testing.T) {
		n := newNode[nimState, nimPlayer, nimOutcome, int8](nimState{tokens: 6, turn: 1}, 2, 0)

		require.False(t, n.terminal)
		require.EqualValues(t, 1, n.player, "acting player cached at construction")
		require.EqualValues(t, 2, n.action)
		require.ElementsMatch(t, []int8{1, 2}, n.untried, "every legal action starts untried")
		require.False(t, n.fullyExpanded())
		require.Zero(t, n.visits)
		require.Zero(t, n.rewards)
	})

	t.Run("terminal", func(t *testing.T) {
		n := newNode[nimState, nimPlayer, nimOutcome, int8](nimState{tokens: 0, turn: 1}, 1, 3)

		require.True(t, n.terminal)
		require.Equal(t, nimOutcome{winner: 0}, n.outcome, "outcome computed once at construction")
		require.Empty(t, n.untried)
		require.True(t, n.fullyExpanded(), "a terminal node has nothing to expand")
		require.EqualValues(t, 3, n.parent)
	})
}
