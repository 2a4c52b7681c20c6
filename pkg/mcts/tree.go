package mcts

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/rs/zerolog/log"
)

/*
SearchTree owns one Monte Carlo search tree over a caller-supplied game.
All nodes live in a single arena slice owned exclusively by the tree:
nothing is shared between two trees, and Renew reclaims memory by
compacting the kept subtree into a fresh arena and dropping the old one
whole. The root is always the node at handle 0.

Searching is synchronous and single-threaded. Concurrent use of one tree
requires external synchronization.
*/
type SearchTree[G GameState[G, P, E, A], P Player[E], E EndStatusLike, A ActionLike] struct {
	nodes []node[G, P, E, A]
	cfg   config
	rng   *rand.Rand
	path  []handle // selection path scratch, reused across simulations
}

// Create a tree rooted at the given state. The state may already be
// terminal, in which case Search reports ErrTerminalState.
func NewSearchTree[G GameState[G, P, E, A], P Player[E], E EndStatusLike, A ActionLike](state G, opts ...Option) *SearchTree[G, P, E, A] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var noAction A
	return &SearchTree[G, P, E, A]{
		nodes: []node[G, P, E, A]{newNode[G, P, E, A](state, noAction, noHandle)},
		cfg:   cfg,
		rng:   cfg.newRand(),
	}
}

func (t *SearchTree[G, P, E, A]) at(h handle) *node[G, P, E, A] {
	return &t.nodes[h]
}

func (t *SearchTree[G, P, E, A]) root() *node[G, P, E, A] {
	return &t.nodes[0]
}

// Append a node to the arena. Existing *node pointers may be
// invalidated by the append, re-take them through at() afterwards.
func (t *SearchTree[G, P, E, A]) add(n node[G, P, E, A]) handle {
	t.nodes = append(t.nodes, n)
	return handle(len(t.nodes) - 1)
}

// Current root state. GameState implementations are immutable values,
// so the returned state is safe to keep and play on independently.
func (t *SearchTree[G, P, E, A]) GameState() G {
	return t.root().state
}

// Number of nodes in the tree.
func (t *SearchTree[G, P, E, A]) Size() int {
	return len(t.nodes)
}

// Number of simulations backpropagated through the current root.
func (t *SearchTree[G, P, E, A]) RootVisits() int32 {
	return t.root().visits
}

// Advance the root to the child reached by action, in response to a
// real move in the game. If the child was expanded during search, its
// whole subtree and statistics survive and seed the next Search call;
// all sibling subtrees are dropped with the old arena. A legal but
// never-expanded action starts a fresh single-node tree. An illegal
// action fails with ErrIllegalAction and leaves the tree untouched.
func (t *SearchTree[G, P, E, A]) Renew(action A) error {
	root := t.root()

	for _, c := range root.children {
		if t.at(c).action == action {
			t.rebase(c)
			return nil
		}
	}

	if slices.Contains(root.untried, action) {
		log.Debug().Msg("mcts: renew action was never expanded, starting fresh tree")
		state := root.state.Act(action)
		t.nodes = []node[G, P, E, A]{newNode[G, P, E, A](state, action, noHandle)}
		return nil
	}

	return fmt.Errorf("renew %v: %w", action, ErrIllegalAction)
}

// Compact the subtree rooted at newRoot into a fresh arena, preserving
// statistics and structure. The old arena is dropped as one allocation.
func (t *SearchTree[G, P, E, A]) rebase(newRoot handle) {
	old := t.nodes

	// Collect the kept subtree in preorder, newRoot first.
	order := make([]handle, 0, len(old))
	stack := []handle{newRoot}
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, h)
		stack = append(stack, old[h].children...)
	}

	remap := make([]handle, len(old))
	for i, h := range order {
		remap[h] = handle(i)
	}

	fresh := make([]node[G, P, E, A], len(order))
	for i, h := range order {
		n := old[h]
		if h == newRoot {
			n.parent = noHandle
		} else {
			n.parent = remap[n.parent]
		}
		for j, c := range n.children {
			n.children[j] = remap[c]
		}
		fresh[i] = n
	}

	t.nodes = fresh
	t.path = nil
}

// Visit share of each explored root action, normalized over the root's
// children. Useful as a policy target or for driver display.
func (t *SearchTree[G, P, E, A]) Policy() map[A]float64 {
	root := t.root()
	total := int32(0)
	for _, c := range root.children {
		total += t.at(c).visits
	}
	if total == 0 {
		return nil
	}

	policy := make(map[A]float64, len(root.children))
	for _, c := range root.children {
		child := t.at(c)
		policy[child.action] = float64(child.visits) / float64(total)
	}
	return policy
}

// Principal variation: the most-visited child chain from the root, the
// engine's current best line of play for both sides.
func (t *SearchTree[G, P, E, A]) Pv() []A {
	pv := make([]A, 0, 8)
	h := handle(0)
	for len(t.at(h).children) > 0 {
		h = t.mostVisited(h)
		pv = append(pv, t.at(h).action)
	}
	return pv
}

// Child of h with the highest visit count, ties kept in index order.
func (t *SearchTree[G, P, E, A]) mostVisited(h handle) handle {
	children := t.at(h).children
	best := children[0]
	for _, c := range children[1:] {
		if t.at(c).visits > t.at(best).visits {
			best = c
		}
	}
	return best
}
