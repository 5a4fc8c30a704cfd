package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForEachWindow(t *testing.T) {
	var grid [Rows][Cols]Player
	count := 0
	forEachWindow(&grid, func([Connect]Player) { count++ })

	// 24 horizontal + 21 vertical + 12 + 12 diagonal
	require.Equal(t, 69, count, "6x7 grid should have 69 windows")
}

func TestScoreWindow(t *testing.T) {
	tests := []struct {
		name   string
		window [Connect]Player
		want   int
	}{
		{"four own", [Connect]Player{One, One, One, One}, FourScore},
		{"three own and a gap", [Connect]Player{One, None, One, One}, ThreeScore},
		{"two own and two gaps", [Connect]Player{None, One, None, One}, TwoScore},
		{"three opponent and a gap", [Connect]Player{Two, Two, None, Two}, OpponentThreeScore},
		{"four opponent is not penalized", [Connect]Player{Two, Two, Two, Two}, 0},
		{"two opponent is not penalized", [Connect]Player{Two, None, Two, None}, 0},
		{"three own blocked", [Connect]Player{One, One, One, Two}, 0},
		{"mixed", [Connect]Player{One, Two, One, Two}, 0},
		{"single own", [Connect]Player{None, None, One, None}, 0},
		{"empty", [Connect]Player{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, scoreWindow(tt.window, One))
		})
	}
}

func TestEvaluateWindows(t *testing.T) {
	t.Run("empty board scores zero for both players", func(t *testing.T) {
		b := NewBoard()
		require.Equal(t, 0, EvaluateWindows(b, One))
		require.Equal(t, 0, EvaluateWindows(b, Two))
	})

	t.Run("scores from each perspective independently", func(t *testing.T) {
		// Three in a row on the bottom row, nothing else
		var grid [Rows][Cols]Player
		grid[Rows-1][0] = One
		grid[Rows-1][1] = One
		grid[Rows-1][2] = One
		b := Board{grid: grid, toMove: Two, moves: 3}

		// XXX. is +5 and XX.. is +2
		require.Equal(t, 7, EvaluateWindows(b, One))
		// XXX. is the only window penalized for player two
		require.Equal(t, -4, EvaluateWindows(b, Two))
	})

	t.Run("accepts a board pointer", func(t *testing.T) {
		b := NewBoard()
		require.Equal(t, 0, EvaluateWindows(&b, One))
	})

	t.Run("panics on a foreign state", func(t *testing.T) {
		require.Panics(t, func() {
			EvaluateWindows(nil, One)
		}, "Should panic when the state is not a Board")
	})

	t.Run("does not modify the board", func(t *testing.T) {
		b := NewBoard().Play(3).(Board)
		before := b.Grid()
		b.Score(Two)
		require.Equal(t, before, b.Grid())
	})
}
