package mcts

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Play uniformly random actions from state until the game ends and
// return the terminal outcome. No tree bookkeeping happens here, the
// visited states are throwaway estimates.
//
// A non-terminal state with zero possible actions means the game model
// is broken (the GameState contract requires at least one action before
// the end), reported as ErrNoPossibleActions.
func (t *SearchTree[G, P, E, A]) rollout(state G) (E, error) {
	for {
		if outcome, over := state.EndStatus(); over {
			return outcome, nil
		}

		actions := state.PossibleActions()
		if len(actions) == 0 {
			log.Warn().Msg("mcts: game model violated its contract, non-terminal state with no actions")
			var none E
			return none, fmt.Errorf("rollout: %w", ErrNoPossibleActions)
		}

		state = state.Act(actions[t.rng.Intn(len(actions))])
	}
}
