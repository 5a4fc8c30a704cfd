package engine

import (
	"errors"

	"connect4/experiments/metrics"
	"connect4/game"
)

var ErrIllegalMove = errors.New("illegal move")

type Engine interface {
	// Run plays a game till it is over or a max number of moves is reached
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
