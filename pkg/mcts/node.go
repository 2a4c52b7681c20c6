package mcts

// One explored game state. Nodes live in the tree's arena and refer to
// each other by handle, never by pointer, so appends may move the whole
// backing array without invalidating anything.
//
// rewards is accumulated from the perspective of the player to move at
// the PARENT node, the player who chose the action leading here. That
// way a parent's UCB1 pass reads every child as "how good is this child
// for me". The root, having no parent, accumulates from its own acting
// player's perspective (its rewards never drive selection, only its
// visit count does).
type node[G GameState[G, P, E, A], P Player[E], E EndStatusLike, A ActionLike] struct {
	state    G
	player   P // player to move at state, cached
	action   A // action that led here, zero value at a fresh root
	parent   handle
	children []handle
	untried  []A // legal actions without a child yet
	outcome  E   // valid only when terminal
	terminal bool
	visits   int32
	rewards  float64
}

// Build a node for the state reached through action. Computes the acting
// player and the untried action set once, statistics start at zero.
func newNode[G GameState[G, P, E, A], P Player[E], E EndStatusLike, A ActionLike](state G, action A, parent handle) node[G, P, E, A] {
	n := node[G, P, E, A]{
		state:  state,
		player: state.Player(),
		action: action,
		parent: parent,
	}

	if outcome, over := state.EndStatus(); over {
		n.outcome = outcome
		n.terminal = true
	} else {
		n.untried = state.PossibleActions()
	}

	return n
}

// True once every legal action has a child. Note this differs from
// terminal: a non-terminal node is fully expanded once all children
// exist, a terminal node is trivially fully expanded and has none.
func (n *node[G, P, E, A]) fullyExpanded() bool {
	return len(n.untried) == 0
}

func (n *node[G, P, E, A]) avgReward() float64 {
	return n.rewards / float64(n.visits)
}
