package bench

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mctree/mctree/pkg/mcts"
)

/*
Arena subpackage, plays a series of games between two engine
configurations of the same game and keeps score. Each game gets two
fresh trees, moves are exchanged through Renew so both sides keep
whatever subtree they already explored.
*/

const defaultSimulations = 1000

type VersusArena[G mcts.GameState[G, P, E, A], P mcts.Player[E], E mcts.EndStatusLike, A mcts.ActionLike] struct {
	VersusArenaStats
	Agent1   Agent
	Agent2   Agent
	NGames   int
	NWorkers int

	start     G
	mu        sync.Mutex
	records   []GameRecord[A]
	wg        sync.WaitGroup
	done      chan struct{}
	ctx       context.Context
	startedAt time.Time
}

func NewVersusArena[G mcts.GameState[G, P, E, A], P mcts.Player[E], E mcts.EndStatusLike, A mcts.ActionLike](
	start G, agent1, agent2 Agent,
) *VersusArena[G, P, E, A] {
	return &VersusArena[G, P, E, A]{
		Agent1:   agent1,
		Agent2:   agent2,
		NGames:   100,
		NWorkers: 2,
		start:    start,
		ctx:      context.Background(),
	}
}

func (va *VersusArena[G, P, E, A]) WithContext(ctx context.Context) *VersusArena[G, P, E, A] {
	va.ctx = ctx
	return va
}

func (va *VersusArena[G, P, E, A]) Setup(nGames, nWorkers int) {
	va.NGames = nGames
	va.NWorkers = nWorkers
}

// Records returns a copy of the per-game records collected so far.
func (va *VersusArena[G, P, E, A]) Records() []GameRecord[A] {
	va.mu.Lock()
	defer va.mu.Unlock()
	return slices.Clone(va.records)
}

// Start launches the run in the background, progress is reported through
// the listener. Call Wait to block until the schedule has been played.
// Start must not be called again while a previous run is in flight.
func (va *VersusArena[G, P, E, A]) Start(listener ListenerLike[A]) {
	if listener == nil {
		listener = NopListener[A]{}
	}
	if va.Agent1.Name == "" {
		va.Agent1.Name = "agent1"
	}
	if va.Agent2.Name == "" {
		va.Agent2.Name = "agent2"
	}
	if va.Agent1.Name == va.Agent2.Name {
		log.Warn().Str("name", va.Agent1.Name).Msg("bench: both agents share a name, renaming the second")
		va.Agent2.Name += "#2"
	}
	if va.Agent1.Simulations <= 0 {
		va.Agent1.Simulations = defaultSimulations
	}
	if va.Agent2.Simulations <= 0 {
		va.Agent2.Simulations = defaultSimulations
	}
	if va.NGames < 1 {
		va.NGames = 1
	}
	if va.NWorkers < 1 {
		va.NWorkers = 1
	}
	if va.NWorkers > va.NGames {
		va.NWorkers = va.NGames
	}

	va.VersusArenaStats = VersusArenaStats{}
	va.startedAt = time.Now()
	va.done = make(chan struct{})
	va.mu.Lock()
	va.records = va.records[:0]
	va.mu.Unlock()

	listener.OnStart(StartInfo{
		P1Name:  va.Agent1.Name,
		P2Name:  va.Agent2.Name,
		NGames:  va.NGames,
		Workers: va.NWorkers,
	})

	// Split the schedule into contiguous ranges so the global game
	// index decides who moves first.
	per := va.NGames / va.NWorkers
	rest := va.NGames % va.NWorkers
	lo := 0
	for w := 0; w < va.NWorkers; w++ {
		n := per
		if w < rest {
			n++
		}
		va.wg.Add(1)
		go va.worker(w, lo, lo+n, listener)
		lo += n
	}

	go func() {
		va.wg.Wait()
		listener.OnEnd(va.summary())
		close(va.done)
	}()
}

// Wait blocks until every scheduled game has finished.
func (va *VersusArena[G, P, E, A]) Wait() {
	if va.done != nil {
		<-va.done
	}
}

// Summary snapshots the score sheet. Stable once Wait has returned.
func (va *VersusArena[G, P, E, A]) Summary() Summary {
	return va.summary()
}

func (va *VersusArena[G, P, E, A]) worker(id, lo, hi int, listener ListenerLike[A]) {
	defer va.wg.Done()

	for g := lo; g < hi; g++ {
		select {
		case <-va.ctx.Done():
			return
		default:
		}

		// Alternate who moves first so neither agent banks on the
		// first-mover advantage.
		first, second := va.Agent1, va.Agent2
		p1First := g%2 == 0
		if !p1First {
			first, second = second, first
		}

		rec := va.playGame(id, g, first, second, p1First, listener)

		switch rec.Result {
		case Draw:
			atomic.AddUint32(&va.draws, 1)
		case Agent1Win:
			atomic.AddUint32(&va.p1Wins, 1)
		case Agent2Win:
			atomic.AddUint32(&va.p2Wins, 1)
		}
		if rec.Winner != "" {
			if rec.Winner == rec.First {
				atomic.AddUint32(&va.firstToMoveWins, 1)
			} else {
				atomic.AddUint32(&va.secondToMoveWins, 1)
			}
		}

		va.mu.Lock()
		va.records = append(va.records, rec)
		va.mu.Unlock()

		log.Debug().
			Str("game", rec.ID).
			Int("worker", id).
			Str("first", rec.First).
			Str("winner", rec.Winner).
			Int("plies", len(rec.Moves)).
			Dur("took", rec.Duration).
			Msg("bench: game finished")

		listener.OnGameFinished(rec)
	}
}

func (va *VersusArena[G, P, E, A]) playGame(workerID, gameIdx int, first, second Agent, p1First bool, listener ListenerLike[A]) GameRecord[A] {
	started := time.Now()
	rec := GameRecord[A]{
		ID:       uuid.NewString(),
		Game:     gameIdx,
		Worker:   workerID,
		First:    first.Name,
		Second:   second.Name,
		PlayedAt: started,
	}

	state := va.start
	firstPlayer := state.Player()
	var secondPlayer P

	treeFirst := mcts.NewSearchTree[G, P, E, A](state, first.Options...)
	treeSecond := mcts.NewSearchTree[G, P, E, A](state, second.Options...)

	var outcome E
	for ply := 0; ; ply++ {
		if ply == 1 {
			secondPlayer = state.Player()
		}

		var over bool
		if outcome, over = state.EndStatus(); over {
			break
		}

		select {
		case <-va.ctx.Done():
			rec.Aborted = true
		default:
		}
		if rec.Aborted {
			break
		}

		tree, agent := treeSecond, second
		if ply%2 == 0 {
			tree, agent = treeFirst, first
		}

		move, err := tree.Search(agent.Simulations)
		if err != nil {
			log.Error().Err(err).
				Str("game", rec.ID).
				Str("agent", agent.Name).
				Int("ply", ply).
				Msg("bench: search failed, aborting game")
			rec.Aborted = true
			break
		}

		if err := treeFirst.Renew(move); err != nil {
			log.Error().Err(err).Str("game", rec.ID).Msg("bench: renew failed, aborting game")
			rec.Aborted = true
			break
		}
		if err := treeSecond.Renew(move); err != nil {
			log.Error().Err(err).Str("game", rec.ID).Msg("bench: renew failed, aborting game")
			rec.Aborted = true
			break
		}

		state = state.Act(move)
		rec.Moves = append(rec.Moves, move)
		listener.OnMove(gameIdx, move)
	}

	rec.Duration = time.Since(started)

	// Aborted games and games over before the first move stay draws,
	// there is nobody to credit.
	if !rec.Aborted && len(rec.Moves) > 0 {
		out := computeOutcome(firstPlayer, secondPlayer, outcome)
		rec.Result = toAgentResult(out, p1First)
		switch {
		case out.isDraw:
		case out.firstMoverWon:
			rec.Winner = rec.First
		default:
			rec.Winner = rec.Second
		}
	} else if len(rec.Moves) == 0 && !rec.Aborted {
		log.Warn().Str("game", rec.ID).Msg("bench: game was over before the first move")
	}

	return rec
}

func (va *VersusArena[G, P, E, A]) summary() Summary {
	return Summary{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		Draws:            va.Draws(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Workers:          va.NWorkers,
		P1Name:           va.Agent1.Name,
		P2Name:           va.Agent2.Name,
		ElapsedMs:        time.Since(va.startedAt).Milliseconds(),
	}
}
