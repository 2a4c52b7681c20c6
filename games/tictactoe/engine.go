package tictactoe

import "github.com/mctree/mctree/pkg/mcts"

// SearchTree is the engine instantiated for this game.
type SearchTree = mcts.SearchTree[Position, Mark, Termination, Square]

// NewSearchTree starts a search tree at the given position.
func NewSearchTree(p Position, opts ...mcts.Option) *SearchTree {
	return mcts.NewSearchTree[Position, Mark, Termination, Square](p, opts...)
}
