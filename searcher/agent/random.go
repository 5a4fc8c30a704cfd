package agent

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"

	"golang.org/x/exp/rand"
)

// randomAgent is not safe for concurrent use.
type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal move.
// Agents with the same seed play the same moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state game.State) (searcher.Result, metrics.SearchMetric, error) {
	if state.IsTerminal() {
		return searcher.Result{Move: game.NoMove}, metrics.SearchMetric{}, searcher.ErrTerminalPosition
	}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return searcher.Result{Move: game.NoMove}, metrics.SearchMetric{}, searcher.ErrNoLegalMoves
	}
	return searcher.Result{Move: moves[a.rng.Intn(len(moves))]}, metrics.SearchMetric{}, nil
}
