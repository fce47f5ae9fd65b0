package strategy

import "othello/game"

// Corners prefers corners and avoids the cells that give away an empty
// corner.
type Corners struct{}

func (Corners) Name() string {
	return "corners"
}

func (Corners) NextPlay(g *game.Game) (game.ValidMove, bool) {
	return best(g.ValidMoves(g.Turn), func(vm game.ValidMove) int {
		return int(g.RegionOf(vm.Position))
	})
}

// Constrain looks one ply ahead and plays the move that leaves the opponent
// the fewest replies.
type Constrain struct{}

func (Constrain) Name() string {
	return "constrain"
}

func (Constrain) NextPlay(g *game.Game) (game.ValidMove, bool) {
	opponent := g.Turn.Opposite()
	return best(g.ValidMoves(g.Turn), func(vm game.ValidMove) int {
		next := g.Clone()
		next.Play(vm)
		return -next.Mobility(opponent)
	})
}
