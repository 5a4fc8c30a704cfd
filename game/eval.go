package game

import "github.com/samber/lo"

// Window contributions, always from the scoring player's point of view
const (
	FourScore          = 100
	ThreeScore         = 5
	TwoScore           = 2
	OpponentThreeScore = -4
)

// EvaluateWindows sums the contribution of every line of Connect cells on the
// board from piece's point of view. Only the opponent's open threes are
// penalized, so the score for one player is not the negation of the score for
// the other.
func EvaluateWindows(s State, piece Player) int {
	switch b := s.(type) {
	case Board:
		return b.Score(piece)
	case *Board:
		return b.Score(piece)
	default:
		panic("unexpected state type")
	}
}

// Score is EvaluateWindows for a known Board.
func (b Board) Score(piece Player) int {
	score := 0
	forEachWindow(&b.grid, func(w [Connect]Player) {
		score += scoreWindow(w, piece)
	})
	return score
}

func scoreWindow(window [Connect]Player, piece Player) int {
	own := lo.Count(window[:], piece)
	empty := lo.Count(window[:], None)
	opponent := lo.Count(window[:], piece.Opponent())

	score := 0
	switch {
	case own == 4:
		score += FourScore
	case own == 3 && empty == 1:
		score += ThreeScore
	case own == 2 && empty == 2:
		score += TwoScore
	}
	if opponent == 3 && empty == 1 {
		score += OpponentThreeScore
	}
	return score
}

// forEachWindow calls fn with every run of Connect cells that fits on the
// grid: rows, columns, then both diagonals.
func forEachWindow(grid *[Rows][Cols]Player, fn func([Connect]Player)) {
	var w [Connect]Player

	for row := 0; row < Rows; row++ {
		for col := 0; col+Connect <= Cols; col++ {
			for i := range w {
				w[i] = grid[row][col+i]
			}
			fn(w)
		}
	}

	for col := 0; col < Cols; col++ {
		for row := 0; row+Connect <= Rows; row++ {
			for i := range w {
				w[i] = grid[row+i][col]
			}
			fn(w)
		}
	}

	// Down-right
	for row := 0; row+Connect <= Rows; row++ {
		for col := 0; col+Connect <= Cols; col++ {
			for i := range w {
				w[i] = grid[row+i][col+i]
			}
			fn(w)
		}
	}

	// Up-right, walked from its top-right end
	for row := 0; row+Connect <= Rows; row++ {
		for col := Connect - 1; col < Cols; col++ {
			for i := range w {
				w[i] = grid[row+i][col-i]
			}
			fn(w)
		}
	}
}
