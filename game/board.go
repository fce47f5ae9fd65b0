package game

import (
	"iter"
	"strings"
)

// Board is the 8x8 grid addressed by Position. It is a value type: assigning
// a Board copies every cell.
type Board struct {
	cells [BoardCells]Disc
}

// NewBoard returns a board with the four starting discs in the center.
func NewBoard() Board {
	var b Board
	b.Set(PositionXY(3, 3), Light)
	b.Set(PositionXY(4, 3), Dark)
	b.Set(PositionXY(4, 4), Light)
	b.Set(PositionXY(3, 4), Dark)
	return b
}

func (b *Board) Get(p Position) Disc {
	return b.cells[p]
}

// Set places a disc without any flipping. Use Game.Play to make a move.
func (b *Board) Set(p Position, d Disc) {
	b.cells[p] = d
}

// PositionsOf yields, in ascending order, every position holding d.
// Pass None to list the empty cells.
func (b *Board) PositionsOf(d Disc) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for i, cell := range b.cells {
			if cell == d && !yield(Position(i)) {
				return
			}
		}
	}
}

// Count returns the number of cells holding d.
func (b *Board) Count(d Disc) int {
	n := 0
	for _, cell := range b.cells {
		if cell == d {
			n++
		}
	}
	return n
}

func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for row := 0; row < BoardWidth; row++ {
		sb.WriteByte(rowDigits[row])
		for col := 0; col < BoardWidth; col++ {
			sb.WriteByte(' ')
			sb.WriteString(b.cells[row*BoardWidth+col].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
