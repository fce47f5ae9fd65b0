package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// gameFromRows builds a mid-game state from 8 rows using 'x' for dark,
// 'o' for light and '.' for empty.
func gameFromRows(t *testing.T, turn Disc, rows ...string) *Game {
	t.Helper()
	require.Len(t, rows, BoardWidth, "Board needs 8 rows")

	g := &Game{Turn: turn, Transcript: make([]Play, 0, BoardCells)}
	for y, row := range rows {
		require.Len(t, row, BoardWidth, "Row %d needs 8 cells", y+1)
		for x, c := range row {
			p := PositionXY(x, y)
			switch c {
			case 'x':
				g.Board.Set(p, Dark)
				g.Dark++
			case 'o':
				g.Board.Set(p, Light)
				g.Light++
			default:
				g.Empty++
			}
		}
	}
	return g
}

// playRandom finishes g with uniformly random legal moves, calling visit
// before every turn.
func playRandom(g *Game, rng *rand.Rand, visit func(*Game)) {
	for !g.Complete {
		if visit != nil {
			visit(g)
		}
		moves := g.ValidMoves(g.Turn)
		if len(moves) == 0 {
			g.Pass()
			continue
		}
		g.Play(moves[rng.Intn(len(moves))])
	}
}

func positions(moves []ValidMove) []Position {
	out := make([]Position, len(moves))
	for i, vm := range moves {
		out[i] = vm.Position
	}
	return out
}
