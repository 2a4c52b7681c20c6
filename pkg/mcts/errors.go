package mcts

import "errors"

var (
	// Returned by Search when the root state is already terminal,
	// there is no action left to recommend.
	ErrTerminalState = errors.New("mcts: root state is terminal")

	// Returned by Renew when the action is not legal at the root.
	// The tree is left exactly as it was.
	ErrIllegalAction = errors.New("mcts: action is not legal at the root")

	// A non-terminal state reported zero possible actions. That breaks
	// the GameState contract, the engine cannot repair it. Statistics
	// committed by earlier simulations stay valid.
	ErrNoPossibleActions = errors.New("mcts: non-terminal state has no possible actions")

	// Returned by Search(0) on a tree with no explored children,
	// there is nothing to compare yet.
	ErrNoSearch = errors.New("mcts: no simulations run and no children to choose from")
)
