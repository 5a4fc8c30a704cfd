package engine

import (
	"fmt"
	"time"

	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/meta"
	"connect4/searcher/agent"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

type LocalEngine struct {
	State    game.State
	Agents   [2]agent.Agent // Indexed by player ID - 1
	MaxMoves int
}

// NewLocalEngine sets up a game from start between two agents, the first
// playing player one.
func NewLocalEngine(agents [2]agent.Agent, start game.State) *LocalEngine {
	return &LocalEngine{
		State:    start,
		Agents:   agents,
		MaxMoves: meta.MAX_MOVES,
	}
}

// Run executes the game loop until the game is over.
func (e *LocalEngine) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(e.State.Player()),
		StartTime:      time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}

	log.Debug().Msgf("%s is starting", e.State.Player())

	for step := 1; !e.State.IsTerminal() && step <= e.MaxMoves; step++ {
		player := e.State.Player()
		if !player.Valid() {
			return game.None, gameMetric, moveMetrics, fmt.Errorf("no agent for %s", player)
		}

		result, searchMetric, err := e.Agents[player-1].FindMove(e.State)
		if err != nil {
			return game.None, gameMetric, moveMetrics, fmt.Errorf("%s failed to find a move: %w", player, err)
		}
		if !lo.Contains(e.State.LegalMoves(), result.Move) {
			return game.None, gameMetric, moveMetrics, fmt.Errorf("%w: %s played %d", ErrIllegalMove, player, result.Move)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       int(player),
			Column:       int(result.Move),
			Value:        result.Value,
			SearchMetric: searchMetric,
		})
		e.State = e.State.Play(result.Move)

		log.Debug().Msgf("step %d: %s played %d (value %d)", step, player, result.Move, result.Value)
	}

	winner := e.State.Winner()
	gameMetric.Winner = int(winner)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if e.State.IsTerminal() {
		log.Debug().Msgf("game over after %d moves, winner: %s", gameMetric.TotalMoves, winner)
	} else {
		log.Debug().Msgf("stopped after %d moves (no winner yet)", gameMetric.TotalMoves)
	}

	return winner, gameMetric, moveMetrics, nil
}
