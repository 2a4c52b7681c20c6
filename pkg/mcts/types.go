package mcts

// Other small types shared across the package

// Index of a node inside the tree's arena. Handles stay valid for the
// lifetime of the tree, until the next Renew compacts the arena.
type handle int32

// Parent value of a root node.
const noHandle handle = -1

// How selection breaks ties between children with equal UCB1 scores.
// Whatever the policy, it is applied consistently within one Search call.
type TieBreak int

const (
	// Keep the first child in index order. The default.
	TieBreakFirst TieBreak = iota

	// Pick uniformly at random among the tied children, using the
	// tree's injected random source.
	TieBreakRandom
)

type SeedGeneratorFnType func() int64
