package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"connect4/engine"
	"connect4/experiments"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/meta"
	"connect4/searcher"
	"connect4/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "play", "What to run: play, experiment or serve")
	depth := flag.Int("depth", meta.DEFAULT_DEPTH, "Search depth of the minimax player")
	opponent := flag.String("opponent", metrics.KindMinimax, "Opponent of the minimax player in play mode: minimax or random")
	configPath := flag.String("config", "", "YAML experiment config, defaults to the built-in depth experiment")
	addr := flag.String("addr", ":8080", "Listen address of the agent server")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed of the random opponent")
	debug := flag.Bool("debug", false, "Log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var err error
	switch *mode {
	case "play":
		err = play(*depth, *opponent, *seed)
	case "experiment":
		err = runExperiment(*configPath)
	case "serve":
		err = agent.NewServer(meta.MAX_DEPTH).ListenAndServe(*addr)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

// play runs a single game between a minimax agent and the chosen opponent and
// prints the final board.
func play(depth int, opponent string, seed uint64) error {
	if depth <= 0 || depth > meta.MAX_DEPTH {
		return fmt.Errorf("%w: %d", searcher.ErrInvalidDepth, depth)
	}

	var second agent.Agent
	switch opponent {
	case metrics.KindMinimax:
		second = agent.NewMinimaxAgent(searcher.NewMinimax(searcher.WithMetrics()), depth)
	case metrics.KindRandom:
		second = agent.NewRandomAgent(seed)
	default:
		return fmt.Errorf("unknown opponent %q", opponent)
	}
	first := agent.NewMinimaxAgent(searcher.NewMinimax(searcher.WithMetrics()), depth)

	e := engine.NewLocalEngine([2]agent.Agent{first, second}, game.NewBoard())
	winner, gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}

	fmt.Print(e.State)
	fmt.Println(strings.Repeat("-", game.Cols))
	for col := 0; col < game.Cols; col++ {
		fmt.Print(col)
	}
	fmt.Println()

	if winner == game.None {
		fmt.Printf("Draw after %d moves (%s)\n", gameMetric.TotalMoves, gameMetric.Duration)
	} else {
		fmt.Printf("Winner: %s after %d moves (%s)\n", winner, gameMetric.TotalMoves, gameMetric.Duration)
	}
	return nil
}

func runExperiment(path string) error {
	cfg := experiments.DefaultConfig()
	if path != "" {
		var err error
		cfg, err = experiments.LoadConfig(path)
		if err != nil {
			return err
		}
	}

	summary, err := experiments.Run(cfg)
	if err != nil {
		return err
	}

	for _, m := range summary.MatchUps {
		fmt.Printf("agent %d vs agent %d: %d-%d, %d draws\n",
			m.Agent1, m.Agent2, m.Wins[m.Agent1], m.Wins[m.Agent2], m.Draws)
	}
	fmt.Printf("Records written to %s\n", summary.Dir)
	return nil
}
