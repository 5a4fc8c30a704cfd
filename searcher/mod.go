package searcher

import (
	"errors"
	"math"

	"connect4/game"
)

// Exact outcome values, from the perspective player's point of view. They
// dominate anything the evaluator can produce.
const (
	WinScore  = 100000000
	LossScore = -WinScore
	DrawScore = 0
)

// Search bounds standing in for -inf and +inf
const (
	NegInf = math.MinInt
	PosInf = math.MaxInt
)

var (
	ErrInvalidDepth     = errors.New("search depth must be positive")
	ErrInvalidPlayer    = errors.New("invalid player")
	ErrTerminalPosition = errors.New("position is already terminal")
	ErrNoLegalMoves     = errors.New("no legal moves in a non-terminal position")
)

// Result is the outcome of searching one node. Move is game.NoMove at
// terminal and depth-limit nodes.
type Result struct {
	Move  game.Move
	Value int
}

func (r Result) HasMove() bool {
	return r.Move != game.NoMove
}

func terminalValue(winner, perspective game.Player) int {
	switch winner {
	case perspective:
		return WinScore
	case perspective.Opponent():
		return LossScore
	default:
		return DrawScore
	}
}
