package experiments

import (
	"fmt"

	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
	"connect4/searcher/agent"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// MatchUpResult tallies the games of one matchup by agent ID.
type MatchUpResult struct {
	MatchUp
	Wins  map[int]int
	Draws int
}

type Summary struct {
	Dir      string // Where the CSV records were written
	MatchUps []MatchUpResult
}

type gameResult struct {
	record   metrics.GameRecord
	moves    []metrics.MoveRecord
	winnerID int // Agent ID, -1 on a draw
}

// Run plays every matchup of the config and stores agent configs, game
// records and move records as CSV files under cfg.OutDir.
func Run(cfg Config) (*Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	configs := lo.KeyBy(cfg.Agents, func(a metrics.AgentConfig) int { return a.ID })

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	summary := &Summary{}

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	for mi, matchUp := range cfg.MatchUps {
		config1 := configs[matchUp.Agent1]
		config2 := configs[matchUp.Agent2]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(cfg.MatchUps), config1, config2)

		results := make([]gameResult, cfg.Games)
		g := new(errgroup.Group)
		g.SetLimit(cfg.ParallelGames)
		for i := 0; i < cfg.Games; i++ {
			id := count + i + 1
			g.Go(func() error {
				// Alternate the starting agent
				first, second := config1, config2
				if i%2 == 1 {
					first, second = config2, config1
				}

				result, err := runGame(id, first, second)
				if err != nil {
					return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
				}
				results[i] = result

				log.Info().Msgf("completed matchup %d of %d game %d with winner: agent %d", mi+1, len(cfg.MatchUps), i+1, result.winnerID)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		count += cfg.Games

		tally := MatchUpResult{MatchUp: matchUp, Wins: map[int]int{}}
		for _, r := range results {
			gameRecords = append(gameRecords, r.record)
			moveRecords = append(moveRecords, r.moves...)
			if r.winnerID < 0 {
				tally.Draws++
			} else {
				tally.Wins[r.winnerID]++
			}
		}
		summary.MatchUps = append(summary.MatchUps, tally)

		log.Info().Msgf("completed matchup %d of %d: %v wins, %d draws", mi+1, len(cfg.MatchUps), tally.Wins, tally.Draws)
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	writer, err := metrics.NewWriter(cfg.OutDir, cfg.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(cfg.Agents); err != nil {
		return nil, err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return nil, err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return nil, err
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	summary.Dir = writer.Dir()
	return summary, nil
}

// runGame plays a single game from the empty board, first playing player one.
// Each game builds its own agents so that games can run concurrently.
func runGame(id int, first, second metrics.AgentConfig) (gameResult, error) {
	agent1, err := createAgent(first, id)
	if err != nil {
		return gameResult{}, err
	}
	agent2, err := createAgent(second, id)
	if err != nil {
		return gameResult{}, err
	}

	e := engine.NewLocalEngine([2]agent.Agent{agent1, agent2}, game.NewBoard())
	winner, gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return gameResult{}, err
	}

	winnerID := -1
	switch winner {
	case game.One:
		winnerID = first.ID
	case game.Two:
		winnerID = second.ID
	}

	return gameResult{
		record: metrics.GameRecord{
			ID:         id,
			Agent1:     first.ID,
			Agent2:     second.ID,
			GameMetric: gameMetric,
		},
		moves: lo.Map(moveMetrics, func(mm metrics.MoveMetric, _ int) metrics.MoveRecord {
			return metrics.MoveRecord{Game: id, MoveMetric: mm}
		}),
		winnerID: winnerID,
	}, nil
}

func createAgent(config metrics.AgentConfig, gameID int) (agent.Agent, error) {
	switch config.Kind {
	case metrics.KindMinimax:
		mm := searcher.NewMinimax(
			searcher.WithPruning(!config.NoPruning),
			searcher.WithMetrics(),
		)
		return agent.NewMinimaxAgent(mm, config.Depth), nil
	case metrics.KindRandom:
		return agent.NewRandomAgent(config.Seed + uint64(gameID)), nil
	case metrics.KindRemote:
		return agent.NewRemoteAgent(config.URL, config.Depth, nil), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
	}
}
