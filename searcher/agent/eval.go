package agent

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
)

type minimaxAgent struct {
	minimax *searcher.Minimax
	depth   int
}

// NewMinimaxAgent returns an agent that searches depth plies for whichever
// player is to move.
func NewMinimaxAgent(minimax *searcher.Minimax, depth int) Agent {
	return minimaxAgent{minimax: minimax, depth: depth}
}

func (a minimaxAgent) FindMove(state game.State) (searcher.Result, metrics.SearchMetric, error) {
	return a.minimax.Analyze(state, a.depth, state.Player())
}
