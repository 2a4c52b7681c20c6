package mcts

import "math/rand"

// Per-tree configuration. Options are deliberately not generic, so a
// []Option can be built once and handed to trees over different games.
type config struct {
	rng         *rand.Rand
	seed        int64
	seeded      bool
	exploration float64
	tieBreak    TieBreak
}

type Option func(*config)

func defaultConfig() config {
	return config{
		exploration: ExplorationParam,
		tieBreak:    TieBreakFirst,
	}
}

func (c *config) newRand() *rand.Rand {
	if c.rng != nil {
		return c.rng
	}
	if c.seeded {
		return rand.New(rand.NewSource(c.seed))
	}
	return rand.New(rand.NewSource(SeedGeneratorFn()))
}

// Seed the tree's random source (expansion picks, rollouts, random
// tie-breaks). Two trees with the same seed, game and call sequence
// behave identically.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// Use the given source directly. Takes precedence over WithSeed.
// The tree assumes exclusive use of it.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// Override the exploration parameter for this tree, clamped at 0.
func WithExploration(exploration float64) Option {
	return func(c *config) {
		c.exploration = max(0.0, exploration)
	}
}

// Choose the selection tie-break policy for this tree.
func WithTieBreak(policy TieBreak) Option {
	return func(c *config) {
		c.tieBreak = policy
	}
}
