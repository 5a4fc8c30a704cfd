// meta/meta.go
package meta

import "connect4/game"

// DEFAULT_DEPTH defines the search depth used when none is given.
const DEFAULT_DEPTH = 5

// MAX_DEPTH bounds the search depth accepted from outside the program.
const MAX_DEPTH = 10

// GAMES defines the number of games played per matchup.
const GAMES = 10

// PARALLEL_GAMES defines how many games of a matchup run at once.
const PARALLEL_GAMES = 4

// MAX_MOVES defines the longest possible game.
const MAX_MOVES = game.Rows * game.Cols
