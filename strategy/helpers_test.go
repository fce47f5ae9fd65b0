package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"othello/game"
)

// gameFromRows builds a position from 8 rows using 'x' for dark, 'o' for
// light and '.' for empty.
func gameFromRows(t *testing.T, turn game.Disc, rows ...string) *game.Game {
	t.Helper()
	require.Len(t, rows, game.BoardWidth)

	g := &game.Game{Turn: turn}
	for y, row := range rows {
		require.Len(t, row, game.BoardWidth)
		for x, c := range row {
			p := game.PositionXY(x, y)
			switch c {
			case 'x':
				g.Board.Set(p, game.Dark)
				g.Dark++
			case 'o':
				g.Board.Set(p, game.Light)
				g.Light++
			default:
				g.Empty++
			}
		}
	}
	return g
}

// play applies the move s picks, or passes.
func play(g *game.Game, s Strategy) {
	vm, ok := s.NextPlay(g)
	if !ok {
		g.Pass()
		return
	}
	g.Play(vm)
}

// outcomes explores every continuation of g and reports whether player wins
// in all of them and in any of them.
func outcomes(g *game.Game, player game.Disc) (always, ever bool) {
	if g.Complete {
		won := g.Leads(player)
		return won, won
	}
	moves := g.ValidMoves(g.Turn)
	if len(moves) == 0 {
		next := g.Clone()
		next.Pass()
		return outcomes(next, player)
	}

	always = true
	for _, vm := range moves {
		next := g.Clone()
		next.Play(vm)
		a, e := outcomes(next, player)
		always = always && a
		ever = ever || e
	}
	return always, ever
}

// decisivePosition searches random games for a position where exactly one
// move wins against every reply and all other moves can never win.
func decisivePosition(t *testing.T) (*game.Game, game.Position) {
	t.Helper()
	for seed := uint64(1); seed <= 3000; seed++ {
		g := game.NewGame()
		random := NewSeededRandom(seed)
		for !g.Complete && g.Empty > 6 {
			play(g, random)
		}

		for !g.Complete {
			if p, ok := decisiveMove(g); ok {
				return g, p
			}
			play(g, random)
		}
	}
	t.Fatal("no decisive position found")
	return nil, 0
}

func decisiveMove(g *game.Game) (game.Position, bool) {
	moves := g.ValidMoves(g.Turn)
	if len(moves) < 2 {
		return 0, false
	}

	winning := -1
	for i, vm := range moves {
		next := g.Clone()
		next.Play(vm)
		always, ever := outcomes(next, g.Turn)
		switch {
		case always && winning < 0:
			winning = i
		case ever:
			return 0, false
		}
	}
	if winning < 0 {
		return 0, false
	}
	return moves[winning].Position, true
}
