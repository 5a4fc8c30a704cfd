package agent

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
)

type Agent interface {
	// FindMove returns the chosen move with its value, and search metrics (if collected)
	FindMove(state game.State) (searcher.Result, metrics.SearchMetric, error)
}
