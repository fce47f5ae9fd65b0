package strategy

import "othello/game"

// Maximize plays the move that flips the most discs.
type Maximize struct{}

func (Maximize) Name() string {
	return "maximize"
}

func (Maximize) NextPlay(g *game.Game) (game.ValidMove, bool) {
	return best(g.ValidMoves(g.Turn), func(vm game.ValidMove) int {
		return vm.Score()
	})
}

// Minimize plays the move that flips the fewest discs.
type Minimize struct{}

func (Minimize) Name() string {
	return "minimize"
}

func (Minimize) NextPlay(g *game.Game) (game.ValidMove, bool) {
	return best(g.ValidMoves(g.Turn), func(vm game.ValidMove) int {
		return -vm.Score()
	})
}
