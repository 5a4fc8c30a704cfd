package agent

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
)

type remoteAgent struct {
	url    string
	depth  int
	client *http.Client
}

// NewRemoteAgent returns an agent that asks the agent server at baseURL to
// search depth plies. A nil client means http.DefaultClient.
func NewRemoteAgent(baseURL string, depth int, client *http.Client) Agent {
	if client == nil {
		client = http.DefaultClient
	}
	return remoteAgent{
		url:    strings.TrimSuffix(baseURL, "/") + "/findmove",
		depth:  depth,
		client: client,
	}
}

// FindMove encodes the board in JSON and posts it to /findmove on the agent
// side. Only node counts are reported back in the search metrics.
func (a remoteAgent) FindMove(state game.State) (searcher.Result, metrics.SearchMetric, error) {
	none := searcher.Result{Move: game.NoMove}
	board, ok := state.(game.Board)
	if !ok {
		return none, metrics.SearchMetric{}, fmt.Errorf("remote agent cannot encode %T", state)
	}

	body, err := json.Marshal(findMoveRequest{
		Board:  board.Lines(),
		ToMove: int(board.Player()),
		Depth:  a.depth,
	})
	if err != nil {
		return none, metrics.SearchMetric{}, err
	}

	resp, err := a.client.Post(a.url, "application/json", bytes.NewReader(body))
	if err != nil {
		return none, metrics.SearchMetric{}, fmt.Errorf("failed to reach agent: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return none, metrics.SearchMetric{}, fmt.Errorf("agent returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(out)))
	}

	var got findMoveResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		return none, metrics.SearchMetric{}, fmt.Errorf("failed to decode agent response: %w", err)
	}
	return searcher.Result{Move: game.Move(got.Column), Value: got.Value},
		metrics.SearchMetric{Depth: a.depth, Nodes: got.Nodes},
		nil
}
