package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mctree/mctree/games/tictactoe"
	"github.com/mctree/mctree/pkg/bench"
	"github.com/mctree/mctree/pkg/mcts"
)

// Plays two engine configurations against each other over tic-tac-toe
// and archives every game. Configured through a config file and
// MCTREE_* environment variables, see config.go for the defaults.

type arena = bench.VersusArena[tictactoe.Position, tictactoe.Mark, tictactoe.Termination, tictactoe.Square]

func main() {
	cfgPath := flag.String("config", "", "path to a config file (yaml, toml or json)")
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("selfplay: bad config")
	}
	setupLogging(cfg)

	if cfg.Seed != 0 {
		// Distinct but reproducible seeds for every tree of the run.
		var seq atomic.Int64
		mcts.SetSeedGeneratorFn(func() int64 {
			return cfg.Seed + seq.Add(1)
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	va := bench.NewVersusArena[tictactoe.Position, tictactoe.Mark, tictactoe.Termination, tictactoe.Square](
		tictactoe.New(), cfg.Agent1.agent(), cfg.Agent2.agent(),
	).WithContext(ctx)
	va.Setup(cfg.Games, cfg.Workers)

	log.Info().
		Int("games", cfg.Games).
		Int("workers", cfg.Workers).
		Str("agent1", cfg.Agent1.Name).
		Str("agent2", cfg.Agent2.Name).
		Msg("selfplay: starting run")

	if cfg.NoTUI {
		va.Start(bench.NewConsoleListener[tictactoe.Square](os.Stdout))
		va.Wait()
	} else {
		listener := bench.NewChannelListener[tictactoe.Square](cfg.Games)
		va.Start(listener)

		program := tea.NewProgram(newDashboard(cfg, listener, cancel), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			log.Error().Err(err).Msg("selfplay: dashboard failed")
			cancel()
		}
		va.Wait()
	}

	rows := bench.ArchiveRows(va.Records())
	if err := bench.WriteArchive(cfg.Out, rows); err != nil {
		log.Fatal().Err(err).Msg("selfplay: archive write failed")
	}
	log.Info().Str("path", cfg.Out).Int("games", len(rows)).Msg("selfplay: archive written")

	printSummary(va)
}

func printSummary(va *arena) {
	out, err := json.MarshalIndent(va.Summary(), "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("selfplay: summary encode failed")
		return
	}
	fmt.Println(string(out))
}

func setupLogging(cfg Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Logs go to a file so they do not fight the dashboard for the
	// terminal.
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatal().Err(err).Msg("selfplay: cannot open log file")
		}
		log.Logger = log.Output(f)
	}
}
