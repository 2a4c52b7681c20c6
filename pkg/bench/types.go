package bench

import (
	"sync/atomic"
	"time"

	"github.com/mctree/mctree/pkg/mcts"
)

// MatchResult is the outcome of a single game from Agent1's perspective.
type MatchResult int

const (
	Agent1Win MatchResult = 1
	Agent2Win MatchResult = -1
	Draw      MatchResult = 0
)

// Agent is one side of the arena: a name for the score sheet, a
// simulation budget per move and the engine options to search with.
type Agent struct {
	Name        string
	Simulations int
	Options     []mcts.Option
}

// VersusArenaStats accumulates results across worker goroutines.
type VersusArenaStats struct {
	p1Wins           uint32
	p2Wins           uint32
	draws            uint32
	firstToMoveWins  uint32
	secondToMoveWins uint32
}

func (vas *VersusArenaStats) Total() int {
	return vas.P1Wins() + vas.P2Wins() + vas.Draws()
}

func (vas *VersusArenaStats) P1Wins() int {
	return int(atomic.LoadUint32(&vas.p1Wins))
}

func (vas *VersusArenaStats) P2Wins() int {
	return int(atomic.LoadUint32(&vas.p2Wins))
}

func (vas *VersusArenaStats) Draws() int {
	return int(atomic.LoadUint32(&vas.draws))
}

func (vas *VersusArenaStats) FirstToMoveWins() int {
	return int(atomic.LoadUint32(&vas.firstToMoveWins))
}

func (vas *VersusArenaStats) SecondToMoveWins() int {
	return int(atomic.LoadUint32(&vas.secondToMoveWins))
}

// GameRecord describes one finished arena game.
type GameRecord[A mcts.ActionLike] struct {
	ID       string
	Game     int // global game index within the run
	Worker   int
	First    string // agent moving first
	Second   string
	Winner   string // empty on a draw
	Result   MatchResult
	Moves    []A
	Duration time.Duration
	PlayedAt time.Time
	Aborted  bool
}

// StartInfo is handed to listeners when a run begins.
type StartInfo struct {
	P1Name  string
	P2Name  string
	NGames  int
	Workers int
}

type Summary struct {
	TotalGames       int    `json:"total_games"`
	P1Wins           int    `json:"player1_wins"`
	P2Wins           int    `json:"player2_wins"`
	FirstToMoveWins  int    `json:"first_to_move_wins"`
	SecondToMoveWins int    `json:"second_to_move_wins"`
	Draws            int    `json:"draws"`
	Workers          int    `json:"workers"`
	P1Name           string `json:"player1_name"`
	P2Name           string `json:"player2_name"`
	ElapsedMs        int64  `json:"elapsed_ms"`
}

// gameOutcome is the result of a single game from the first mover's side.
type gameOutcome struct {
	firstMoverWon bool
	isDraw        bool
}

// maps a game outcome to which agent won, given who moved first
func toAgentResult(outcome gameOutcome, p1WentFirst bool) MatchResult {
	if outcome.isDraw {
		return Draw
	}

	if p1WentFirst == outcome.firstMoverWon {
		return Agent1Win
	}
	return Agent2Win
}

// computeOutcome scores a finished game by asking each side to value the
// end status. Works for any reward scheme where the winner values the
// outcome strictly higher than the loser.
func computeOutcome[P mcts.Player[E], E mcts.EndStatusLike](firstPlayer, secondPlayer P, outcome E) gameOutcome {
	rFirst := firstPlayer.Reward(outcome)
	rSecond := secondPlayer.Reward(outcome)

	switch {
	case rFirst > rSecond:
		return gameOutcome{firstMoverWon: true}
	case rSecond > rFirst:
		return gameOutcome{}
	default:
		return gameOutcome{isDraw: true}
	}
}
