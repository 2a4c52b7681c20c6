package mcts

import "math"

// Descend one level: pick the child of h maximizing the UCB1 score
//
//	rewards/visits + C * sqrt(ln(parent_visits) / visits)
//
// exploitation plus exploration bonus. Precondition (guaranteed by the
// selection loop): h is fully expanded and non-terminal, so every child
// has been visited at least once and the divisions are safe.
//
// Rewards are stored from the chooser's perspective (see node), so the
// score directly ranks the children by value to the player to move at h.
func (t *SearchTree[G, P, E, A]) selectChild(h handle) handle {
	n := t.at(h)
	lnN := math.Log(float64(n.visits))

	best := n.children[0]
	bestScore := math.Inf(-1)
	ties := 1

	for _, c := range n.children {
		child := t.at(c)

		// An unvisited child takes precedence over every scored one.
		// Cannot happen through honest games (fully expanded implies
		// every child was backpropagated once), kept as a safety net
		// for trees that survived a game-model contract error.
		if child.visits == 0 {
			return c
		}

		score := child.avgReward() +
			t.cfg.exploration*math.Sqrt(lnN/float64(child.visits))

		switch {
		case score > bestScore:
			best = c
			bestScore = score
			ties = 1
		case score == bestScore && t.cfg.tieBreak == TieBreakRandom:
			// Reservoir pick: uniform over all tied children seen so far
			ties++
			if t.rng.Intn(ties) == 0 {
				best = c
			}
		}
	}

	return best
}
