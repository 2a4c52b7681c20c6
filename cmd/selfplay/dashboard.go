package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mctree/mctree/games/tictactoe"
	"github.com/mctree/mctree/pkg/bench"
)

type gameMsg struct {
	rec bench.GameRecord[tictactoe.Square]
}

type doneMsg struct {
	summary bench.Summary
}

type tickMsg time.Time

// dashboard renders arena progress while the workers play in the
// background. Quitting with q cancels the run.
type dashboard struct {
	p1Name string
	p2Name string
	total  int

	played int
	p1Wins int
	p2Wins int
	draws  int
	moves  int64
	recent []string

	startTime time.Time
	listener  *bench.ChannelListener[tictactoe.Square]
	cancel    context.CancelFunc
}

func newDashboard(cfg Config, listener *bench.ChannelListener[tictactoe.Square], cancel context.CancelFunc) dashboard {
	return dashboard{
		p1Name:    cfg.Agent1.Name,
		p2Name:    cfg.Agent2.Name,
		total:     cfg.Games,
		startTime: time.Now(),
		listener:  listener,
		cancel:    cancel,
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func waitForGame(listener *bench.ChannelListener[tictactoe.Square]) tea.Cmd {
	return func() tea.Msg {
		select {
		case rec := <-listener.Records():
			return gameMsg{rec: rec}
		case summary := <-listener.Done():
			return doneMsg{summary: summary}
		}
	}
}

func (m dashboard) Init() tea.Cmd {
	return tea.Batch(waitForGame(m.listener), tickCmd())
}

func (m dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			m.cancel()
			return m, tea.Quit
		}

	case tickMsg:
		m.moves = m.listener.Moves()
		return m, tickCmd()

	case gameMsg:
		m.played++
		switch msg.rec.Result {
		case bench.Agent1Win:
			m.p1Wins++
		case bench.Agent2Win:
			m.p2Wins++
		default:
			m.draws++
		}

		line := fmt.Sprintf("game %3d: %s first, %s, %d plies",
			msg.rec.Game+1, msg.rec.First, verdict(msg.rec), len(msg.rec.Moves))
		m.recent = append([]string{line}, m.recent...)
		if len(m.recent) > 10 {
			m.recent = m.recent[:10]
		}
		return m, waitForGame(m.listener)

	case doneMsg:
		return m, tea.Quit
	}

	return m, nil
}

func verdict(rec bench.GameRecord[tictactoe.Square]) string {
	switch {
	case rec.Aborted:
		return "aborted"
	case rec.Winner == "":
		return "draw"
	default:
		return rec.Winner + " wins"
	}
}

func (m dashboard) View() string {
	duration := time.Since(m.startTime)
	movesPerSec := 0.0
	if duration.Seconds() >= 1 {
		movesPerSec = float64(m.moves) / duration.Seconds()
	}

	s := fmt.Sprintf("%s vs %s\n\n", m.p1Name, m.p2Name)
	s += fmt.Sprintf("Games:   %d/%d\n", m.played, m.total)
	s += fmt.Sprintf("Score:   %s %d, %s %d, draws %d\n", m.p1Name, m.p1Wins, m.p2Name, m.p2Wins, m.draws)
	s += fmt.Sprintf("Moves:   %d (%.0f/s)\n", m.moves, movesPerSec)
	s += fmt.Sprintf("Elapsed: %s\n\n", duration.Round(time.Second))

	s += "Recent games:\n"
	for _, line := range m.recent {
		s += line + "\n"
	}

	s += "\nPress q to abort.\n"
	return s
}
