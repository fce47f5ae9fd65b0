package game

import (
	"errors"
	"fmt"
	"strings"
)

const (
	BoardWidth = 8
	BoardCells = BoardWidth * BoardWidth
)

const (
	columnLetters = "abcdefgh"
	rowDigits     = "12345678"
)

var ErrBadCoordinate = errors.New("bad coordinate")

// Position is a cell index in [0, 64). Index = column + row*8.
type Position int

// NewPosition panics when index is off the board.
func NewPosition(index int) Position {
	if index < 0 || index >= BoardCells {
		panic(fmt.Sprintf("position out of bounds - index: %d", index))
	}
	return Position(index)
}

// PositionXY builds a Position from a 0-based column x and row y.
func PositionXY(x, y int) Position {
	if x < 0 || x >= BoardWidth || y < 0 || y >= BoardWidth {
		panic(fmt.Sprintf("position out of bounds - x: %d, y: %d", x, y))
	}
	return Position(y*BoardWidth + x)
}

// ParsePosition reads a coordinate such as "d3".
func ParsePosition(s string) (Position, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}
	x := strings.IndexByte(columnLetters, s[0])
	y := strings.IndexByte(rowDigits, s[1])
	if x < 0 || y < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}
	return PositionXY(x, y), nil
}

// XY returns the column and row of the position.
func (p Position) XY() (x, y int) {
	return int(p) % BoardWidth, int(p) / BoardWidth
}

func (p Position) String() string {
	x, y := p.XY()
	return string([]byte{columnLetters[x], rowDigits[y]})
}
