package mcts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRolloutTerminalState(t *testing.T) {
	tree := newNimTree(4)
	outcome, err := tree.rollout(nimState{tokens: 0, turn: 1})
	require.NoError(t, err)
	require.Equal(t, nimOutcome{winner: 0}, outcome, "a terminal state returns its own outcome untouched")
}

func TestRolloutAlwaysTerminates(t *testing.T) {
	tree := newNimTree(30, WithSeed(11))
	for i := 0; i < 200; i++ {
		outcome, err := tree.rollout(nimState{tokens: 30})
		require.NoError(t, err)
		require.Contains(t, []nimPlayer{0, 1}, outcome.winner, "random play still produces a winner")
	}
}

func TestRolloutBrokenModel(t *testing.T) {
	tree := NewSearchTree[brokenState, brokenPlayer, struct{}, int8](brokenState{})
	_, err := tree.rollout(brokenState{depth: 3})
	require.ErrorIs(t, err, ErrNoPossibleActions)
}
