package game

import (
	"errors"
	"fmt"
	"strings"
)

const (
	Rows    = 6
	Cols    = 7
	Connect = 4 // Pieces in a line needed to win
)

var (
	ErrColumnOutOfRange = errors.New("column out of range")
	ErrColumnFull       = errors.New("column is full")
	ErrGameOver         = errors.New("game is over")
	ErrInvalidPlayer    = errors.New("invalid player to move")
	ErrInvalidCell      = errors.New("invalid cell value")
	ErrFloatingPiece    = errors.New("piece is not supported from below")
	ErrPieceCount       = errors.New("piece counts do not match the player to move")
	ErrMultipleWinners  = errors.New("both players have four in a row")
	ErrMalformedBoard   = errors.New("malformed board")
)

// directions a line can run in: horizontal, vertical, diagonal down-right,
// diagonal up-right
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {-1, 1}}

// Board is a connect four position. Row 0 is the top row and pieces fall to
// the lowest empty row of their column. The grid is an array, so copying a
// Board copies its cells: every Drop or Play returns an independent position.
type Board struct {
	grid   [Rows][Cols]Player
	toMove Player
	moves  int
	winner Player
}

// NewBoard returns the empty starting position with player one to move.
func NewBoard() Board {
	return Board{toMove: One}
}

// FromGrid builds a position from raw cell contents, rejecting anything that
// could not arise from legal play with player one moving first.
func FromGrid(grid [Rows][Cols]Player, toMove Player) (Board, error) {
	if !toMove.Valid() {
		return Board{}, fmt.Errorf("%w: %d", ErrInvalidPlayer, toMove)
	}

	counts := map[Player]int{}
	for col := 0; col < Cols; col++ {
		sawEmpty := false
		for row := Rows - 1; row >= 0; row-- {
			cell := grid[row][col]
			switch {
			case cell == None:
				sawEmpty = true
			case !cell.Valid():
				return Board{}, fmt.Errorf("%w: %d at row %d column %d", ErrInvalidCell, cell, row, col)
			case sawEmpty:
				return Board{}, fmt.Errorf("%w: row %d column %d", ErrFloatingPiece, row, col)
			default:
				counts[cell]++
			}
		}
	}

	// Player one always moves first
	diff := counts[One] - counts[Two]
	if (toMove == One && diff != 0) || (toMove == Two && diff != 1) {
		return Board{}, fmt.Errorf("%w: %d vs %d pieces with %s to move",
			ErrPieceCount, counts[One], counts[Two], toMove)
	}

	winner, err := findWinner(&grid)
	if err != nil {
		return Board{}, err
	}

	return Board{
		grid:   grid,
		toMove: toMove,
		moves:  counts[One] + counts[Two],
		winner: winner,
	}, nil
}

// Parse reads a board rendered by Board.String: Rows lines of Cols symbols,
// top row first, '.' for empty, 'X' for player one and 'O' for player two.
// Blank lines and spaces are ignored.
func Parse(text string, toMove Player) (Board, error) {
	rows := []string{}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			rows = append(rows, line)
		}
	}
	return ParseRows(rows, toMove)
}

// ParseRows is Parse with the rows already split.
func ParseRows(rows []string, toMove Player) (Board, error) {
	if len(rows) != Rows {
		return Board{}, fmt.Errorf("%w: got %d rows, want %d", ErrMalformedBoard, len(rows), Rows)
	}

	var grid [Rows][Cols]Player
	for r, line := range rows {
		line = strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		if len(line) != Cols {
			return Board{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedBoard, r, len(line), Cols)
		}
		for c := 0; c < Cols; c++ {
			p, ok := playerFromSymbol(line[c])
			if !ok {
				return Board{}, fmt.Errorf("%w: %q at row %d column %d", ErrInvalidCell, line[c], r, c)
			}
			grid[r][c] = p
		}
	}
	return FromGrid(grid, toMove)
}

func (b Board) Player() Player {
	return b.toMove
}

func (b Board) Winner() Player {
	return b.winner
}

func (b Board) IsTerminal() bool {
	return b.winner != None || b.moves == Rows*Cols
}

// LegalMoves returns the columns with room for another piece, in ascending
// order. A won game has no legal moves.
func (b Board) LegalMoves() []Move {
	if b.winner != None {
		return nil
	}
	moves := make([]Move, 0, Cols)
	for col := 0; col < Cols; col++ {
		if b.grid[0][col] == None {
			moves = append(moves, Move(col))
		}
	}
	return moves
}

// Play applies a legal move and panics otherwise. Use Drop when the move
// comes from outside the program.
func (b Board) Play(move Move) State {
	next, err := b.Drop(move)
	if err != nil {
		panic(fmt.Sprintf("illegal move %d: %v", move, err))
	}
	return next
}

// Drop places the mover's piece in the given column and returns the
// resulting position. The receiver is left untouched. The zero Board has
// nobody to move and rejects every drop; start from NewBoard instead.
func (b Board) Drop(col Move) (Board, error) {
	if !b.toMove.Valid() {
		return Board{}, fmt.Errorf("%w: %s", ErrInvalidPlayer, b.toMove)
	}
	if b.IsTerminal() {
		return Board{}, ErrGameOver
	}
	if col < 0 || int(col) >= Cols {
		return Board{}, fmt.Errorf("%w: %d", ErrColumnOutOfRange, col)
	}
	row := b.openRow(int(col))
	if row < 0 {
		return Board{}, fmt.Errorf("%w: %d", ErrColumnFull, col)
	}

	next := b
	next.grid[row][col] = b.toMove
	next.moves++
	if next.connects(row, int(col)) {
		next.winner = b.toMove
	}
	next.toMove = b.toMove.Opponent()
	return next, nil
}

// Cell returns the contents of the given cell, row 0 being the top row.
func (b Board) Cell(row, col int) Player {
	return b.grid[row][col]
}

// Grid returns a copy of the cells.
func (b Board) Grid() [Rows][Cols]Player {
	return b.grid
}

func (b Board) MovesPlayed() int {
	return b.moves
}

// Lines renders the board one string per row, top row first, in the format
// accepted by ParseRows.
func (b Board) Lines() []string {
	return strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
}

func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			sb.WriteByte(b.grid[row][col].symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// openRow returns the lowest empty row of col, or -1 when the column is full
func (b Board) openRow(col int) int {
	for row := Rows - 1; row >= 0; row-- {
		if b.grid[row][col] == None {
			return row
		}
	}
	return -1
}

// connects reports whether the piece at (row, col) is part of a line of
// Connect or more pieces of its owner.
func (b Board) connects(row, col int) bool {
	owner := b.grid[row][col]
	for _, d := range directions {
		count := 1 + b.run(row, col, d[0], d[1], owner) + b.run(row, col, -d[0], -d[1], owner)
		if count >= Connect {
			return true
		}
	}
	return false
}

// run counts owner's consecutive pieces starting next to (row, col) and
// stepping by (dr, dc)
func (b Board) run(row, col, dr, dc int, owner Player) int {
	n := 0
	for r, c := row+dr, col+dc; r >= 0 && r < Rows && c >= 0 && c < Cols; r, c = r+dr, c+dc {
		if b.grid[r][c] != owner {
			break
		}
		n++
	}
	return n
}

func findWinner(grid *[Rows][Cols]Player) (Player, error) {
	won := map[Player]bool{}
	forEachWindow(grid, func(w [Connect]Player) {
		if w[0] == None {
			return
		}
		for _, cell := range w[1:] {
			if cell != w[0] {
				return
			}
		}
		won[w[0]] = true
	})

	switch {
	case won[One] && won[Two]:
		return None, ErrMultipleWinners
	case won[One]:
		return One, nil
	case won[Two]:
		return Two, nil
	default:
		return None, nil
	}
}

func (p Player) symbol() byte {
	switch p {
	case One:
		return 'X'
	case Two:
		return 'O'
	default:
		return '.'
	}
}

func playerFromSymbol(s byte) (Player, bool) {
	switch s {
	case '.':
		return None, true
	case 'X', 'x':
		return One, true
	case 'O', 'o':
		return Two, true
	default:
		return None, false
	}
}
