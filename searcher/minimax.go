package searcher

import (
	"fmt"

	"connect4/experiments/metrics"
	"connect4/game"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax is a depth-limited minimax search with alpha-beta pruning. It keeps
// no state between searches besides its metrics collector, and a single
// search runs sequentially on the calling goroutine.
type Minimax struct {
	evaluate game.Evaluate
	pruning  bool
	metrics  metrics.Collector
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithPruning turns alpha-beta cutoffs on or off. Without pruning every node
// up to the depth limit is searched.
func WithPruning(enabled bool) Option {
	return func(m *Minimax) {
		m.pruning = enabled
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		evaluate: game.EvaluateWindows,
		pruning:  true,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// ChooseMove returns the best move for perspective found by searching
// maxDepth plies from state.
func (m *Minimax) ChooseMove(state game.State, maxDepth int, perspective game.Player) (game.Move, error) {
	result, _, err := m.Analyze(state, maxDepth, perspective)
	if err != nil {
		return game.NoMove, err
	}
	return result.Move, nil
}

// Analyze is ChooseMove that also reports the root value and the search
// metrics (empty unless WithMetrics was given).
func (m *Minimax) Analyze(state game.State, maxDepth int, perspective game.Player) (Result, metrics.SearchMetric, error) {
	none := Result{Move: game.NoMove}
	if maxDepth <= 0 {
		return none, metrics.SearchMetric{}, fmt.Errorf("%w: %d", ErrInvalidDepth, maxDepth)
	}
	if !perspective.Valid() {
		return none, metrics.SearchMetric{}, fmt.Errorf("%w: %s", ErrInvalidPlayer, perspective)
	}
	if !state.Player().Valid() {
		return none, metrics.SearchMetric{}, fmt.Errorf("%w: %s to move", ErrInvalidPlayer, state.Player())
	}
	if state.IsTerminal() {
		return none, metrics.SearchMetric{}, ErrTerminalPosition
	}

	m.metrics.Start(maxDepth, m.pruning)
	result := m.Search(state, 0, maxDepth, perspective, NegInf, PosInf)
	metric := m.metrics.Complete()

	if !result.HasMove() {
		return result, metric, ErrNoLegalMoves
	}

	event := log.Debug().
		Int("move", int(result.Move)).
		Int("value", result.Value).
		Int("depth", maxDepth)
	if metric.Nodes > 0 {
		event = event.Int("nodes", metric.Nodes)
	}
	event.Msgf("%s chose a move", perspective)
	return result, metric, nil
}

// Search scores state from perspective's point of view. A node is a
// maximizing node whenever perspective is the player to move in it, so the
// search does not rely on the players alternating.
//
// Terminal nodes score WinScore, LossScore or DrawScore. Nodes at maxDepth are
// scored by the evaluator. Both return game.NoMove.
func (m *Minimax) Search(state game.State, currentDepth, maxDepth int, perspective game.Player, alpha, beta int) Result {
	m.metrics.AddNode()

	if state.IsTerminal() {
		m.metrics.AddTerminal()
		return Result{Move: game.NoMove, Value: terminalValue(state.Winner(), perspective)}
	}
	if currentDepth >= maxDepth {
		m.metrics.AddLeaf()
		return Result{Move: game.NoMove, Value: m.evaluate(state, perspective)}
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		// Nobody can move and nobody has won
		log.Debug().Int("depth", currentDepth).Msg("non-terminal position without legal moves, scoring as a draw")
		return Result{Move: game.NoMove, Value: DrawScore}
	}

	if state.Player() == perspective {
		return m.maximize(state, moves, currentDepth, maxDepth, perspective, alpha, beta)
	}
	return m.minimize(state, moves, currentDepth, maxDepth, perspective, alpha, beta)
}

func (m *Minimax) maximize(state game.State, moves []game.Move, currentDepth, maxDepth int, perspective game.Player, alpha, beta int) Result {
	best := Result{Move: game.NoMove, Value: NegInf}
	for _, move := range moves {
		child := m.Search(state.Play(move), currentDepth+1, maxDepth, perspective, alpha, beta)
		// Strictly better only: the first move found wins ties
		if child.Value > best.Value {
			best = Result{Move: move, Value: child.Value}
		}
		if !m.pruning {
			continue
		}
		alpha = max(alpha, best.Value)
		if alpha >= beta {
			m.metrics.AddCutoff()
			break
		}
	}
	return best
}

func (m *Minimax) minimize(state game.State, moves []game.Move, currentDepth, maxDepth int, perspective game.Player, alpha, beta int) Result {
	best := Result{Move: game.NoMove, Value: PosInf}
	for _, move := range moves {
		child := m.Search(state.Play(move), currentDepth+1, maxDepth, perspective, alpha, beta)
		if child.Value < best.Value {
			best = Result{Move: move, Value: child.Value}
		}
		if !m.pruning {
			continue
		}
		beta = min(beta, best.Value)
		if beta <= alpha {
			m.metrics.AddCutoff()
			break
		}
	}
	return best
}
