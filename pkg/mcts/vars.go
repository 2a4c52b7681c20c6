package mcts

import (
	"math"
	"time"
)

// Exploration parameter used in the UCB1 formula, higher values increase
// exploration, lower values increase exploitation. The theoretical value
// for rewards in [0, 1] is sqrt(2), which is the default. Read once at
// tree construction, override per tree with WithExploration.
var ExplorationParam float64 = math.Sqrt2

// Set the package-wide default exploration parameter, clamped at 0.
func SetExplorationParam(c float64) {
	ExplorationParam = max(0.0, c)
}

// Seeds for the per-tree random sources are drawn from this function,
// by default the current time in nanoseconds. Tests replace it to make
// every tree in the process reproducible without touching call sites.
var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

// Set a custom seed generator for the random sources of new trees.
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}
