package game

import "fmt"

// Player identifies the owner of a cell or the side to move. None marks an
// empty cell, or no winner.
type Player int

const (
	None Player = iota
	One
	Two
)

func (p Player) Valid() bool {
	return p == One || p == Two
}

// Opponent returns the other player. None has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case One:
		return Two
	case Two:
		return One
	default:
		return None
	}
}

func (p Player) String() string {
	switch p {
	case None:
		return "none"
	case One:
		return "player1"
	case Two:
		return "player2"
	default:
		return fmt.Sprintf("player(%d)", int(p))
	}
}

// Move is the column a piece is dropped into.
type Move int

// NoMove is returned where a search node has no move to report (terminal or
// depth-limit nodes).
const NoMove Move = -1

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() Player
	LegalMoves() []Move
	Play(Move) State
	// Winner is None unless the game is over and someone won
	Winner() Player
	IsTerminal() bool
}

// Evaluate scores a non-terminal position from the given player's point of
// view. Higher is better for that player.
type Evaluate func(State, Player) int
