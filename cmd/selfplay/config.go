package main

import (
	"math"
	"strings"

	"github.com/spf13/viper"

	"github.com/mctree/mctree/pkg/bench"
	"github.com/mctree/mctree/pkg/mcts"
)

type AgentConfig struct {
	Name        string  `mapstructure:"name"`
	Simulations int     `mapstructure:"simulations"`
	Exploration float64 `mapstructure:"exploration"`
	TieBreak    string  `mapstructure:"tie_break"`
}

func (ac AgentConfig) agent() bench.Agent {
	opts := []mcts.Option{mcts.WithExploration(ac.Exploration)}
	if ac.TieBreak == "random" {
		opts = append(opts, mcts.WithTieBreak(mcts.TieBreakRandom))
	}
	return bench.Agent{Name: ac.Name, Simulations: ac.Simulations, Options: opts}
}

type Config struct {
	Games    int         `mapstructure:"games"`
	Workers  int         `mapstructure:"workers"`
	Out      string      `mapstructure:"out"`
	LogFile  string      `mapstructure:"log_file"`
	LogLevel string      `mapstructure:"log_level"`
	NoTUI    bool        `mapstructure:"no_tui"`
	Seed     int64       `mapstructure:"seed"`
	Agent1   AgentConfig `mapstructure:"agent1"`
	Agent2   AgentConfig `mapstructure:"agent2"`
}

// loadConfig layers defaults, an optional config file and MCTREE_*
// environment variables.
func loadConfig(path string) (Config, error) {
	viper.SetDefault("games", 200)
	viper.SetDefault("workers", 4)
	viper.SetDefault("out", "data/arena.parquet")
	viper.SetDefault("log_file", "selfplay.log")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("no_tui", false)
	viper.SetDefault("seed", 0)
	viper.SetDefault("agent1.name", "explorer")
	viper.SetDefault("agent1.simulations", 3000)
	viper.SetDefault("agent1.exploration", math.Sqrt2)
	viper.SetDefault("agent1.tie_break", "first")
	viper.SetDefault("agent2.name", "exploiter")
	viper.SetDefault("agent2.simulations", 3000)
	viper.SetDefault("agent2.exploration", 0.5)
	viper.SetDefault("agent2.tie_break", "first")

	viper.SetEnvPrefix("MCTREE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
