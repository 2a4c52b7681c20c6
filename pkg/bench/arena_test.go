package bench

import (
	"bytes"
	"os"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/mctree/mctree/pkg/mcts"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	// Distinct but reproducible seeds for the trees spawned by workers.
	var seq atomic.Int64
	mcts.SetSeedGeneratorFn(func() int64 {
		return 42 + seq.Add(1)
	})

	os.Exit(m.Run())
}

// Take-away game: remove 1 or 2 tokens, whoever takes the last one wins.
// Small enough that arena games finish in a handful of plies.

type nimPlayer int8

func (p nimPlayer) Reward(out nimOutcome) float64 {
	if out.winner == p {
		return 1
	}
	return 0
}

type nimOutcome struct{ winner nimPlayer }

type nimState struct {
	tokens int8
	turn   nimPlayer
}

func (s nimState) Player() nimPlayer { return s.turn }

func (s nimState) EndStatus() (nimOutcome, bool) {
	if s.tokens == 0 {
		return nimOutcome{winner: 1 - s.turn}, true
	}
	return nimOutcome{}, false
}

func (s nimState) PossibleActions() []int8 {
	switch {
	case s.tokens >= 2:
		return []int8{1, 2}
	case s.tokens == 1:
		return []int8{1}
	default:
		return nil
	}
}

func (s nimState) Act(take int8) nimState {
	return nimState{tokens: s.tokens - take, turn: 1 - s.turn}
}

func newNimArena(tokens int8, agent1, agent2 Agent) *VersusArena[nimState, nimPlayer, nimOutcome, int8] {
	return NewVersusArena[nimState, nimPlayer, nimOutcome, int8](nimState{tokens: tokens}, agent1, agent2)
}

func TestArenaStrongBeatsWeak(t *testing.T) {
	arena := newNimArena(7,
		Agent{Name: "strong", Simulations: 3000},
		Agent{Name: "weak", Simulations: 4},
	)
	arena.Setup(20, 4)
	arena.Start(nil)
	arena.Wait()

	require.Equal(t, 20, arena.Total(), "every scheduled game must be played")
	require.Zero(t, arena.Draws(), "this game always produces a winner")
	require.Greater(t, arena.P1Wins(), arena.P2Wins(), "3000 simulations must outplay 4")
	require.Equal(t, 20, arena.FirstToMoveWins()+arena.SecondToMoveWins())
}

func TestArenaRecords(t *testing.T) {
	arena := newNimArena(7,
		Agent{Name: "a", Simulations: 50},
		Agent{Name: "b", Simulations: 50},
	)
	arena.Setup(9, 3)
	arena.Start(nil)
	arena.Wait()

	records := arena.Records()
	require.Len(t, records, 9)

	aFirst := 0
	for _, rec := range records {
		require.NotEmpty(t, rec.ID)
		require.NotEmpty(t, rec.Moves)
		require.False(t, rec.Aborted)
		require.Contains(t, []string{"a", "b"}, rec.Winner)
		require.Positive(t, rec.Duration)
		if rec.First == "a" {
			aFirst++
		}
	}
	// Global game index 0, 2, 4, 6, 8 give agent1 the first move.
	require.Equal(t, 5, aFirst, "first mover must alternate by game index")
}

func TestArenaChannelListener(t *testing.T) {
	listener := NewChannelListener[int8](32)
	arena := newNimArena(7,
		Agent{Name: "a", Simulations: 50},
		Agent{Name: "b", Simulations: 50},
	)
	arena.Setup(8, 2)
	arena.Start(listener)
	arena.Wait()

	summary := <-listener.Done()
	require.Equal(t, 8, summary.TotalGames)
	require.Equal(t, "a", summary.P1Name)
	require.Equal(t, "b", summary.P2Name)
	require.Equal(t, 8, summary.P1Wins+summary.P2Wins+summary.Draws)

	for i := 0; i < 8; i++ {
		select {
		case rec := <-listener.Records():
			require.NotEmpty(t, rec.ID)
		default:
			t.Fatalf("expected 8 records on the channel, dried up after %d", i)
		}
	}
	require.Positive(t, listener.Moves())
}

func TestArenaConsoleListener(t *testing.T) {
	var buf bytes.Buffer
	listener := NewConsoleListener[int8](&buf)

	arena := newNimArena(5,
		Agent{Name: "left", Simulations: 50},
		Agent{Name: "right", Simulations: 50},
	)
	arena.Setup(4, 2)
	arena.Start(listener)
	arena.Wait()

	out := buf.String()
	require.Contains(t, out, "left vs right, 4 games over 2 workers")
	require.Contains(t, out, "[  4/4]")
	require.Contains(t, out, "draws")
}

func TestArenaDefaults(t *testing.T) {
	arena := newNimArena(3, Agent{}, Agent{})
	arena.Setup(2, 8)
	arena.Start(nil)
	arena.Wait()

	require.Equal(t, "agent1", arena.Agent1.Name)
	require.Equal(t, "agent2", arena.Agent2.Name)
	require.Equal(t, defaultSimulations, arena.Agent1.Simulations)
	require.Equal(t, 2, arena.NWorkers, "workers must be capped at the game count")
	require.Equal(t, 2, arena.Total())
}
