package mcts

// The capability contract a game must satisfy for the engine to search it.
// Split into four small pieces, so the engine never depends on concrete
// game logic: actions, terminal outcomes, players, and the state itself.

// Anything equality-comparable works as an action signature
// (square index, move struct, card id...).
type ActionLike comparable

// Opaque terminal result of a game ("cross won", "draw"...). The engine
// never inspects it, only hands it to Player.Reward.
type EndStatusLike any

// Identifies whose turn it is and maps terminal outcomes to that
// player's payoff.
type Player[E EndStatusLike] interface {
	// Payoff of the given terminal outcome for this player, in a bounded
	// range, conventionally [0, 1] (1 = best). Different players may map
	// the same outcome differently, so zero-sum and non-zero-sum games
	// are both representable.
	Reward(outcome E) float64
}

// One point of a turn-based, perfect-information game. Implementations
// must behave as immutable values: Act returns a successor and leaves
// the receiver untouched.
//
// The G parameter is the implementing type itself, so Act can return it
// without boxing:
//
//	type Position struct{ ... }
//	func (p Position) Act(m Square) Position { ... }
//
// makes Position satisfy GameState[Position, Player, Outcome, Square].
type GameState[G any, P Player[E], E EndStatusLike, A ActionLike] interface {
	// Player to move at this state.
	Player() P

	// Terminal outcome, if the game is over. Comma-ok: the second value
	// reports whether the state is terminal.
	EndStatus() (E, bool)

	// Legal actions at this state. Finite, free of duplicates, and
	// non-empty unless the state is terminal. The engine takes ownership
	// of the returned slice, so return a fresh one on every call.
	PossibleActions() []A

	// Successor state after playing the action. Pure: must not mutate
	// the receiver. Undefined for actions outside PossibleActions.
	Act(action A) G
}
