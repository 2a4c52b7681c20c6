package mcts

import "fmt"

// Run the given number of full selection, expansion, simulation,
// backpropagation cycles from the root, then return the action of the
// most-visited root child (more simulation-stable than the best average
// reward). Runs synchronously, exactly simulations cycles, no fewer.
//
// Fails with ErrTerminalState before any work if the root is terminal,
// and with ErrNoSearch when simulations is zero and no children exist
// yet. A malformed game model surfaces as ErrNoPossibleActions, see
// rollout.
func (t *SearchTree[G, P, E, A]) Search(simulations int) (A, error) {
	var none A
	if t.root().terminal {
		return none, ErrTerminalState
	}
	if simulations <= 0 && len(t.root().children) == 0 {
		return none, ErrNoSearch
	}

	for i := 0; i < simulations; i++ {
		if err := t.simulate(); err != nil {
			return none, fmt.Errorf("search: %w", err)
		}
	}

	return t.at(t.mostVisited(0)).action, nil
}

// One full simulation cycle.
func (t *SearchTree[G, P, E, A]) simulate() error {
	path := t.path[:0]

	// Selection: descend by UCB1 while the node has nothing left to
	// expand. The children guard only trips on malformed games (a
	// non-terminal node with no actions), which rollout then reports.
	h := handle(0)
	path = append(path, h)
	for n := t.at(h); !n.terminal && n.fullyExpanded() && len(n.children) > 0; n = t.at(h) {
		h = t.selectChild(h)
		path = append(path, h)
	}

	// Expansion: materialize one untried action as a new child and
	// continue from it. Terminal nodes are rolled out directly.
	if n := t.at(h); !n.terminal && len(n.untried) > 0 {
		h = t.expand(h)
		path = append(path, h)
	}

	outcome, err := t.rollout(t.at(h).state)
	t.path = path
	if err != nil {
		// Leave the stats committed by earlier cycles untouched, this
		// cycle is simply not backpropagated.
		return err
	}

	t.backpropagate(path, outcome)
	return nil
}

// Pick one untried action at random, play it, and adopt the successor
// as a new child of h. Returns the child's handle.
func (t *SearchTree[G, P, E, A]) expand(h handle) handle {
	n := t.at(h)

	i := t.rng.Intn(len(n.untried))
	action := n.untried[i]
	n.untried[i] = n.untried[len(n.untried)-1]
	n.untried = n.untried[:len(n.untried)-1]

	child := t.add(newNode[G, P, E, A](n.state.Act(action), action, h))
	// add may have moved the arena, re-take the parent pointer
	t.at(h).children = append(t.at(h).children, child)
	return child
}

// Credit the rollout outcome to every node on the selection path. Each
// node's reward is taken from the perspective of the player who was to
// move at its parent (the chooser of the way in); the root uses its own
// acting player.
func (t *SearchTree[G, P, E, A]) backpropagate(path []handle, outcome E) {
	for i, h := range path {
		chooser := t.at(h).player
		if i > 0 {
			chooser = t.at(path[i-1]).player
		}

		n := t.at(h)
		n.visits++
		n.rewards += chooser.Reward(outcome)
	}
}
