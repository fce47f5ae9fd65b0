package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNewGame(t *testing.T) {
	g := NewGame()

	require.Equal(t, Dark, g.Turn)
	require.Equal(t, 2, g.Dark)
	require.Equal(t, 2, g.Light)
	require.Equal(t, 60, g.Empty)
	require.Empty(t, g.Transcript)
	require.False(t, g.Complete)
}

func TestPass(t *testing.T) {
	t.Run("single pass hands over the turn", func(t *testing.T) {
		g := NewGame()
		g.Pass()

		require.Equal(t, Light, g.Turn)
		require.Equal(t, []Play{PassPlay()}, g.Transcript)
		require.False(t, g.Complete)
	})

	t.Run("consecutive passes end the game", func(t *testing.T) {
		g := NewGame()
		g.Pass()
		g.Pass()

		require.True(t, g.Complete)
		require.Equal(t, Light, g.Turn, "The closing pass is not recorded")
		require.Equal(t, []Play{PassPlay()}, g.Transcript)
	})

	t.Run("pass does not change the counts", func(t *testing.T) {
		g := NewGame()
		g.Play(g.ValidMoves(g.Turn)[0])
		g.Pass()

		require.Equal(t, 59, g.Empty)
		require.Equal(t, 64, g.Dark+g.Light+g.Empty)
	})
}

func TestScoring(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 25; i++ {
		g := NewGame()
		previousEmpty := g.Empty
		playRandom(g, rng, func(g *Game) {
			require.Equal(t, BoardCells, g.Dark+g.Light+g.Empty)
			require.LessOrEqual(t, previousEmpty-g.Empty, 1, "At most one cell fills per turn")
			previousEmpty = g.Empty
		})

		require.True(t, g.Complete)
		require.Equal(t, g.Board.Count(Dark), g.Dark)
		require.Equal(t, g.Board.Count(Light), g.Light)
		require.Equal(t, g.Board.Count(None), g.Empty)

		dark, light := g.Score()
		switch {
		case dark > light:
			require.Equal(t, Dark, g.Winner())
		case light > dark:
			require.Equal(t, Light, g.Winner())
		default:
			require.Equal(t, None, g.Winner())
		}
		require.Equal(t, dark-light, g.Margin(Dark))
	}
}

func TestWinnerOnTie(t *testing.T) {
	g := gameFromRows(t, Light,
		"........",
		"........",
		"........",
		"xxx.....",
		"........",
		"........",
		"........",
		".....ooo",
	)
	require.Equal(t, None, g.Winner())
	require.False(t, g.Leads(Dark), "A draw is nobody's lead")
	require.False(t, g.Leads(Light), "A draw is nobody's lead")
	require.Equal(t, 0, g.Margin(Dark))

	g.Board.Set(PositionXY(3, 3), Dark)
	g.Dark++
	g.Empty--
	require.Equal(t, Dark, g.Winner())
	require.True(t, g.Leads(Dark))
	require.False(t, g.Leads(Light))
}

func TestClone(t *testing.T) {
	g := NewGame()
	g.Play(g.ValidMoves(g.Turn)[0])

	clone := g.Clone()
	require.Equal(t, g, clone)

	require.True(t, g.Equal(clone))

	clone.Play(clone.ValidMoves(clone.Turn)[0])
	require.False(t, g.Equal(clone))
	require.Len(t, g.Transcript, 1, "Cloned-from transcript should not grow")
	require.Len(t, clone.Transcript, 2)
	require.NotEqual(t, g.Board, clone.Board, "Cloned-from board should not change")
	require.Equal(t, Light, g.Turn)
}

func TestGameString(t *testing.T) {
	out := NewGame().String()
	require.Contains(t, out, "  a b c d e f g h\n")
	require.Contains(t, out, "Turn: ○ Dark: 2 Light: 2 Empty: 60")
}
