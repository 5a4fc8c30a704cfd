package searcher

import "connect4/game"

// mockState is a hand-built game tree. Move i leads to children[i].
type mockState struct {
	player   game.Player
	winner   game.Player
	terminal bool
	value    int // Returned by mockEvaluate
	children []mockState
}

func (m mockState) Player() game.Player {
	return m.player
}

func (m mockState) LegalMoves() []game.Move {
	moves := make([]game.Move, len(m.children))
	for i := range m.children {
		moves[i] = game.Move(i)
	}
	return moves
}

func (m mockState) Play(move game.Move) game.State {
	return m.children[move]
}

func (m mockState) Winner() game.Player {
	return m.winner
}

func (m mockState) IsTerminal() bool {
	return m.terminal
}

func mockEvaluate(s game.State, _ game.Player) int {
	return s.(mockState).value
}

func leaves(values ...int) []mockState {
	nodes := make([]mockState, len(values))
	for i, v := range values {
		nodes[i] = mockState{player: game.One, value: v}
	}
	return nodes
}
