package experiments

import (
	"errors"
	"fmt"
	"os"

	"connect4/experiments/metrics"
	"connect4/meta"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid experiment config")

// MatchUp pairs two agents by ID. Agent1 moves first in odd games, Agent2 in
// even ones.
type MatchUp struct {
	Agent1 int `yaml:"agent1"`
	Agent2 int `yaml:"agent2"`
}

type Config struct {
	Name          string                `yaml:"name"`
	OutDir        string                `yaml:"out_dir"`
	Games         int                   `yaml:"games"` // Per match up
	ParallelGames int                   `yaml:"parallel_games"`
	Agents        []metrics.AgentConfig `yaml:"agents"`
	MatchUps      []MatchUp             `yaml:"matchups"`
}

// DefaultConfig pits minimax at increasing depths against a random baseline,
// and checks that pruning does not change how a depth-4 agent plays.
func DefaultConfig() Config {
	return Config{
		Name:          "depth",
		OutDir:        "experiments",
		Games:         meta.GAMES,
		ParallelGames: meta.PARALLEL_GAMES,
		Agents: []metrics.AgentConfig{
			{ID: 0, Kind: metrics.KindRandom, Seed: 1},
			{ID: 1, Kind: metrics.KindMinimax, Depth: 1},
			{ID: 2, Kind: metrics.KindMinimax, Depth: 2},
			{ID: 3, Kind: metrics.KindMinimax, Depth: 4},
			{ID: 4, Kind: metrics.KindMinimax, Depth: 4, NoPruning: true},
		},
		MatchUps: []MatchUp{
			{Agent1: 0, Agent2: 1},
			{Agent1: 0, Agent2: 2},
			{Agent1: 0, Agent2: 3},
			{Agent1: 1, Agent2: 3},
			{Agent1: 3, Agent2: 4},
		},
	}
}

// LoadConfig reads a YAML experiment config. Fields left out keep their
// DefaultConfig values, except agents and matchups which replace the defaults
// when given.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidConfig)
	}
	if c.Games <= 0 {
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidConfig, c.Games)
	}
	if c.ParallelGames <= 0 {
		return fmt.Errorf("%w: parallel_games must be positive, got %d", ErrInvalidConfig, c.ParallelGames)
	}

	seen := map[int]bool{}
	for _, a := range c.Agents {
		if seen[a.ID] {
			return fmt.Errorf("%w: duplicate agent id %d", ErrInvalidConfig, a.ID)
		}
		seen[a.ID] = true

		switch a.Kind {
		case metrics.KindMinimax, metrics.KindRemote:
			if a.Depth <= 0 || a.Depth > meta.MAX_DEPTH {
				return fmt.Errorf("%w: agent %d depth must be between 1 and %d", ErrInvalidConfig, a.ID, meta.MAX_DEPTH)
			}
			if a.Kind == metrics.KindRemote && a.URL == "" {
				return fmt.Errorf("%w: agent %d needs a url", ErrInvalidConfig, a.ID)
			}
		case metrics.KindRandom:
		default:
			return fmt.Errorf("%w: agent %d has unknown kind %q", ErrInvalidConfig, a.ID, a.Kind)
		}
	}

	if len(c.MatchUps) == 0 {
		return fmt.Errorf("%w: no matchups", ErrInvalidConfig)
	}
	for _, m := range c.MatchUps {
		if m.Agent1 == m.Agent2 {
			return fmt.Errorf("%w: agent %d cannot play itself", ErrInvalidConfig, m.Agent1)
		}
		missing := lo.Filter([]int{m.Agent1, m.Agent2}, func(id int, _ int) bool { return !seen[id] })
		if len(missing) > 0 {
			return fmt.Errorf("%w: matchup refers to unknown agents %v", ErrInvalidConfig, missing)
		}
	}
	return nil
}
