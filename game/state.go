package game

import (
	"fmt"
	"slices"
)

// Game is the full state of a game in progress. Create one with NewGame or
// FromTranscript. A Game is mutated sequentially by its owner; use Clone to
// get an independent copy for lookahead or rollouts.
type Game struct {
	Turn       Disc   // The player to move
	Dark       int    // Dark discs on the board
	Light      int    // Light discs on the board
	Empty      int    // Empty cells on the board
	Board      Board  // The board
	Transcript []Play // Every move and pass played so far
	Complete   bool   // Whether the game is over
}

// NewGame returns the standard opening position with dark to move.
func NewGame() *Game {
	return &Game{
		Turn:       Dark,
		Dark:       2,
		Light:      2,
		Empty:      BoardCells - 4,
		Board:      NewBoard(),
		Transcript: make([]Play, 0, BoardCells),
	}
}

// Clone returns a deep copy sharing no mutable memory with g.
func (g *Game) Clone() *Game {
	transcript := make([]Play, len(g.Transcript), max(cap(g.Transcript), BoardCells))
	copy(transcript, g.Transcript)

	clone := *g
	clone.Transcript = transcript
	return &clone
}

// Play applies a move obtained from ValidateMove or ValidMoves for the
// current turn. The move is not validated again.
func (g *Game) Play(vm ValidMove) {
	player := g.Turn
	for _, p := range vm.Flips {
		g.Board.Set(p, player)
	}
	g.Board.Set(vm.Position, player)

	changed := len(vm.Flips)
	if player == Dark {
		g.Dark += changed + 1
		g.Light -= changed
	} else {
		g.Light += changed + 1
		g.Dark -= changed
	}
	g.Empty--

	g.Transcript = append(g.Transcript, MovePlay(vm.Position))
	if g.Empty == 0 {
		g.Complete = true
	}
	g.Turn = player.Opposite()
}

// Pass forfeits the current turn. A pass directly after the opponent's pass
// ends the game and is not recorded.
func (g *Game) Pass() {
	if n := len(g.Transcript); n > 0 && g.Transcript[n-1].Pass {
		g.Complete = true
		return
	}
	g.Transcript = append(g.Transcript, PassPlay())
	g.Turn = g.Turn.Opposite()
}

// Score returns the disc counts of both players.
func (g *Game) Score() (dark, light int) {
	return g.Dark, g.Light
}

// Winner returns the color with more discs, or None on a tie.
func (g *Game) Winner() Disc {
	switch {
	case g.Dark > g.Light:
		return Dark
	case g.Light > g.Dark:
		return Light
	default:
		return None
	}
}

// Leads reports whether player has strictly more discs than the opponent.
func (g *Game) Leads(player Disc) bool {
	return g.Winner() == player
}

// Equal reports whether both games have the same turn, counts, board,
// transcript and completion.
func (g *Game) Equal(other *Game) bool {
	return g.Turn == other.Turn &&
		g.Dark == other.Dark &&
		g.Light == other.Light &&
		g.Empty == other.Empty &&
		g.Board == other.Board &&
		g.Complete == other.Complete &&
		slices.Equal(g.Transcript, other.Transcript)
}

func (g *Game) String() string {
	return fmt.Sprintf("%s\nTurn: %s Dark: %d Light: %d Empty: %d\n", g.Board, g.Turn, g.Dark, g.Light, g.Empty)
}
