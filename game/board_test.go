package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string, toMove Player) Board {
	t.Helper()
	b, err := Parse(text, toMove)
	require.NoError(t, err)
	return b
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	require.Equal(t, One, b.Player(), "Player one should move first")
	require.Equal(t, None, b.Winner(), "Empty board should have no winner")
	require.False(t, b.IsTerminal(), "Empty board should not be terminal")
	require.Equal(t, []Move{0, 1, 2, 3, 4, 5, 6}, b.LegalMoves(), "All columns should be playable")
	require.Equal(t, 0, b.MovesPlayed())
}

func TestBoardDrop(t *testing.T) {
	t.Run("pieces stack from the bottom and turns alternate", func(t *testing.T) {
		b := NewBoard()

		b, err := b.Drop(3)
		require.NoError(t, err)
		b, err = b.Drop(3)
		require.NoError(t, err)

		require.Equal(t, One, b.Cell(Rows-1, 3), "First piece should land on the bottom row")
		require.Equal(t, Two, b.Cell(Rows-2, 3), "Second piece should land on top of the first")
		require.Equal(t, One, b.Player(), "Turn should return to player one")
		require.Equal(t, 2, b.MovesPlayed())
	})

	t.Run("column out of range", func(t *testing.T) {
		_, err := NewBoard().Drop(Cols)
		require.ErrorIs(t, err, ErrColumnOutOfRange)

		_, err = NewBoard().Drop(-1)
		require.ErrorIs(t, err, ErrColumnOutOfRange)
	})

	t.Run("zero board has nobody to move", func(t *testing.T) {
		var b Board

		_, err := b.Drop(3)
		require.ErrorIs(t, err, ErrInvalidPlayer)
		require.Panics(t, func() { b.Play(3) })
		require.Equal(t, None, b.Cell(Rows-1, 3))
		require.Equal(t, 0, b.MovesPlayed())
	})

	t.Run("full column", func(t *testing.T) {
		b := NewBoard()
		var err error
		for i := 0; i < Rows; i++ {
			b, err = b.Drop(0)
			require.NoError(t, err)
		}

		_, err = b.Drop(0)
		require.ErrorIs(t, err, ErrColumnFull)
		require.NotContains(t, b.LegalMoves(), Move(0), "Full column should not be a legal move")
	})

	t.Run("no moves after a win", func(t *testing.T) {
		b := mustParse(t, `
			.......
			.......
			.......
			.......
			OOO....
			XXX....`, One)

		b, err := b.Drop(3)
		require.NoError(t, err)
		require.Equal(t, One, b.Winner())
		require.True(t, b.IsTerminal())
		require.Empty(t, b.LegalMoves(), "Won game should have no legal moves")

		_, err = b.Drop(4)
		require.ErrorIs(t, err, ErrGameOver)
	})

	t.Run("play panics on an illegal move", func(t *testing.T) {
		require.Panics(t, func() {
			NewBoard().Play(Cols)
		})
	})
}

func TestBoardPlayDoesNotMutate(t *testing.T) {
	b := mustParse(t, `
		.......
		.......
		.......
		...O...
		..XX...
		.OXXO..`, Two)
	snapshot := b.Grid()
	before := b.String()

	for _, move := range b.LegalMoves() {
		child := b.Play(move).(Board)

		require.Equal(t, snapshot, b.Grid(), "Parent grid should not change after playing %d", move)
		require.Equal(t, before, b.String())
		require.Equal(t, Two, b.Player(), "Parent side to move should not change")
		require.NotEqual(t, snapshot, child.Grid(), "Child should hold the new piece")
	}
}

func TestBoardWinDetection(t *testing.T) {
	tests := []struct {
		name  string
		board string
		move  Move
	}{
		{
			name: "horizontal",
			board: `
				.......
				.......
				.......
				.......
				.OOO...
				.XXX...`,
			move: 4,
		},
		{
			name: "vertical",
			board: `
				.......
				.......
				.......
				X......
				XO.....
				XO.O...`,
			move: 0,
		},
		{
			name: "diagonal up-right",
			board: `
				.......
				.......
				.......
				..XO...
				.XOO...
				XOXXO..`,
			move: 3,
		},
		{
			name: "diagonal down-right",
			board: `
				.......
				.......
				.......
				...OX..
				...OOX.
				..XOXOX`,
			move: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustParse(t, tt.board, One)
			require.Equal(t, None, b.Winner(), "Position should not be won yet")

			next, err := b.Drop(tt.move)
			require.NoError(t, err)
			require.Equal(t, One, next.Winner(), "Player one should win by playing %d", tt.move)
			require.True(t, next.IsTerminal())
		})
	}
}

func TestBoardDraw(t *testing.T) {
	// Column pairs alternate so that no line of four ever forms
	b := NewBoard()
	order := []Move{0, 1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 0,
		2, 3, 2, 3, 2, 3, 3, 2, 3, 2, 3, 2,
		4, 5, 4, 5, 4, 5, 5, 4, 5, 4, 5, 4,
		6, 6, 6, 6, 6, 6}
	var err error
	for _, m := range order {
		b, err = b.Drop(m)
		require.NoError(t, err)
		require.Equal(t, None, b.Winner(), "Nobody should win:\n%s", b)
	}

	require.True(t, b.IsTerminal(), "Full board should be terminal")
	require.Equal(t, None, b.Winner(), "Full board without a line should be a draw")
	require.Empty(t, b.LegalMoves())
}

func TestFromGrid(t *testing.T) {
	t.Run("valid position", func(t *testing.T) {
		var grid [Rows][Cols]Player
		grid[Rows-1][3] = One
		grid[Rows-1][4] = Two

		b, err := FromGrid(grid, One)
		require.NoError(t, err)
		require.Equal(t, 2, b.MovesPlayed())
		require.Equal(t, grid, b.Grid())
	})

	t.Run("invalid cell value", func(t *testing.T) {
		var grid [Rows][Cols]Player
		grid[Rows-1][0] = Player(3)

		_, err := FromGrid(grid, One)
		require.ErrorIs(t, err, ErrInvalidCell)
	})

	t.Run("invalid player to move", func(t *testing.T) {
		_, err := FromGrid([Rows][Cols]Player{}, None)
		require.ErrorIs(t, err, ErrInvalidPlayer)
	})

	t.Run("floating piece", func(t *testing.T) {
		var grid [Rows][Cols]Player
		grid[Rows-2][0] = One

		_, err := FromGrid(grid, Two)
		require.ErrorIs(t, err, ErrFloatingPiece)
	})

	t.Run("piece count does not match side to move", func(t *testing.T) {
		var grid [Rows][Cols]Player
		grid[Rows-1][0] = One

		_, err := FromGrid(grid, One)
		require.ErrorIs(t, err, ErrPieceCount)
	})

	t.Run("both players connected", func(t *testing.T) {
		_, err := Parse(`
			.......
			.......
			XXXX...
			OOOO...
			XXXO...
			OOOX...`, One)
		require.ErrorIs(t, err, ErrMultipleWinners)
	})

	t.Run("existing win is detected", func(t *testing.T) {
		b := mustParse(t, `
			.......
			.......
			.......
			.......
			OOO....
			XXXX...`, Two)
		require.Equal(t, One, b.Winner())
		require.True(t, b.IsTerminal())
	})
}

func TestParse(t *testing.T) {
	t.Run("renders back to the same text", func(t *testing.T) {
		text := ".......\n.......\n.......\n.......\n..O....\n..XX...\n"
		b := mustParse(t, text, Two)
		require.Equal(t, text, b.String())
	})

	t.Run("lines parse back to the same board", func(t *testing.T) {
		b := NewBoard().Play(3).(Board).Play(3).(Board).Play(4).(Board)

		got, err := ParseRows(b.Lines(), b.Player())
		require.NoError(t, err)
		require.Equal(t, b, got)
		require.Len(t, b.Lines(), Rows)
	})

	t.Run("wrong number of rows", func(t *testing.T) {
		_, err := Parse(".......\n.......", One)
		require.ErrorIs(t, err, ErrMalformedBoard)
	})

	t.Run("wrong row width", func(t *testing.T) {
		_, err := ParseRows([]string{".......", ".......", ".......", ".......", ".......", "......"}, One)
		require.ErrorIs(t, err, ErrMalformedBoard)
	})

	t.Run("unknown symbol", func(t *testing.T) {
		_, err := ParseRows([]string{".......", ".......", ".......", ".......", ".......", "...Z..."}, One)
		require.ErrorIs(t, err, ErrInvalidCell)
	})
}

func TestPlayer(t *testing.T) {
	require.Equal(t, Two, One.Opponent())
	require.Equal(t, One, Two.Opponent())
	require.Equal(t, None, None.Opponent())
	require.False(t, None.Valid())
	require.Equal(t, "player2", Two.String())
}
