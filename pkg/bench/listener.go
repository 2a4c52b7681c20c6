package bench

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/muesli/termenv"

	"github.com/mctree/mctree/pkg/mcts"
)

// ListenerLike receives progress callbacks from a running arena.
// Callbacks arrive from multiple worker goroutines at once.
type ListenerLike[A mcts.ActionLike] interface {
	OnStart(info StartInfo)
	OnMove(game int, move A)
	OnGameFinished(rec GameRecord[A])
	OnEnd(summary Summary)
}

// NopListener ignores everything, embed it to pick the callbacks you need.
type NopListener[A mcts.ActionLike] struct{}

func (NopListener[A]) OnStart(StartInfo)            {}
func (NopListener[A]) OnMove(int, A)                {}
func (NopListener[A]) OnGameFinished(GameRecord[A]) {}
func (NopListener[A]) OnEnd(Summary)                {}

// ConsoleListener prints one line per finished game and a final score
// block, colored when the terminal supports it.
type ConsoleListener[A mcts.ActionLike] struct {
	NopListener[A]

	mu     sync.Mutex
	w      io.Writer
	out    *termenv.Output
	played int
	total  int
}

func NewConsoleListener[A mcts.ActionLike](w io.Writer) *ConsoleListener[A] {
	return &ConsoleListener[A]{w: w, out: termenv.NewOutput(w)}
}

func (l *ConsoleListener[A]) OnStart(info StartInfo) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.played = 0
	l.total = info.NGames
	fmt.Fprintf(l.w, "%s vs %s, %d games over %d workers\n",
		l.out.String(info.P1Name).Bold(),
		l.out.String(info.P2Name).Bold(),
		info.NGames, info.Workers)
}

func (l *ConsoleListener[A]) OnGameFinished(rec GameRecord[A]) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.played++
	verdict := l.out.String("draw").Foreground(termenv.ANSIYellow)
	switch {
	case rec.Aborted:
		verdict = l.out.String("aborted").Foreground(termenv.ANSIRed)
	case rec.Winner != "":
		verdict = l.out.String(rec.Winner + " wins").Foreground(termenv.ANSIGreen)
	}

	fmt.Fprintf(l.w, "[%3d/%d] %s first, %s, %d plies in %s\n",
		l.played, l.total, rec.First, verdict,
		len(rec.Moves), rec.Duration.Round(time.Millisecond))
}

func (l *ConsoleListener[A]) OnEnd(s Summary) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.w, "\n%s %d  %s %d  draws %d  (first mover won %d, second %d) in %dms\n",
		l.out.String(s.P1Name).Bold(), s.P1Wins,
		l.out.String(s.P2Name).Bold(), s.P2Wins,
		s.Draws, s.FirstToMoveWins, s.SecondToMoveWins, s.ElapsedMs)
}

// ChannelListener forwards progress over channels, for wiring up a TUI
// or any other consumer. Record sends never block, when the buffer is
// full the update is dropped.
type ChannelListener[A mcts.ActionLike] struct {
	NopListener[A]

	records chan GameRecord[A]
	done    chan Summary
	moves   atomic.Int64
}

func NewChannelListener[A mcts.ActionLike](buffer int) *ChannelListener[A] {
	if buffer <= 0 {
		buffer = 64
	}
	return &ChannelListener[A]{
		records: make(chan GameRecord[A], buffer),
		done:    make(chan Summary, 1),
	}
}

func (l *ChannelListener[A]) OnMove(int, A) {
	l.moves.Add(1)
}

func (l *ChannelListener[A]) OnGameFinished(rec GameRecord[A]) {
	select {
	case l.records <- rec:
	default:
	}
}

func (l *ChannelListener[A]) OnEnd(summary Summary) {
	select {
	case l.done <- summary:
	default:
	}
}

func (l *ChannelListener[A]) Records() <-chan GameRecord[A] { return l.records }

func (l *ChannelListener[A]) Done() <-chan Summary { return l.done }

// Moves is the number of plies played so far across all games.
func (l *ChannelListener[A]) Moves() int64 { return l.moves.Load() }
