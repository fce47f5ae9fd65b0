package strategy

import "othello/game"

// Simple always plays the last legal move in enumeration order.
type Simple struct{}

func (Simple) Name() string {
	return "simple"
}

func (Simple) NextPlay(g *game.Game) (game.ValidMove, bool) {
	moves := g.ValidMoves(g.Turn)
	if len(moves) == 0 {
		return game.ValidMove{}, false
	}
	return moves[len(moves)-1], true
}
