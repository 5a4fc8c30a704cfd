package agent

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"connect4/game"
	"connect4/meta"
	"connect4/searcher"

	"github.com/rs/zerolog/log"
)

type findMoveRequest struct {
	Board  []string `json:"board"` // Top row first, as rendered by game.Board
	ToMove int      `json:"toMove"`
	Depth  int      `json:"depth"`
}

type findMoveResponse struct {
	Column int `json:"column"`
	Value  int `json:"value"`
	Nodes  int `json:"nodes"`
}

// Server answers move requests over HTTP with a fresh minimax search per
// request.
type Server struct {
	maxDepth int
}

func NewServer(maxDepth int) *Server {
	if maxDepth <= 0 || maxDepth > meta.MAX_DEPTH {
		maxDepth = meta.MAX_DEPTH
	}
	return &Server{maxDepth: maxDepth}
}

func (s *Server) Handler() http.Handler {
	// Create a local mux rather than using the global DefaultServeMux
	mux := http.NewServeMux()
	mux.HandleFunc("/findmove", s.handleFindMove)
	return mux
}

// ListenAndServe serves the agent on addr until the server fails.
func (s *Server) ListenAndServe(addr string) error {
	log.Info().Msgf("starting agent server on %s ...", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) handleFindMove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var payload findMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}

	depth := payload.Depth
	if depth == 0 {
		depth = min(meta.DEFAULT_DEPTH, s.maxDepth)
	}
	if depth < 0 || depth > s.maxDepth {
		http.Error(w, fmt.Sprintf("bad request: depth must be between 1 and %d", s.maxDepth), http.StatusBadRequest)
		return
	}

	board, err := game.ParseRows(payload.Board, game.Player(payload.ToMove))
	if err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}

	mm := searcher.NewMinimax(searcher.WithMetrics())
	result, metric, err := mm.Analyze(board, depth, board.Player())
	if errors.Is(err, searcher.ErrTerminalPosition) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("search failed")
		http.Error(w, "search failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(findMoveResponse{
		Column: int(result.Move),
		Value:  result.Value,
		Nodes:  metric.Nodes,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to encode move")
	}
}
