// Package game implements the Othello rules: board geometry, legal move
// generation, move application with scoring, and transcript replay.
package game

import "fmt"

// Disc is the content of a board cell. The zero value None marks an empty cell.
type Disc uint8

const (
	None Disc = iota
	Dark
	Light
)

// Opposite returns the other player's color.
func (d Disc) Opposite() Disc {
	switch d {
	case Dark:
		return Light
	case Light:
		return Dark
	default:
		panic(fmt.Sprintf("no opposite for disc %d", d))
	}
}

func (d Disc) String() string {
	switch d {
	case Dark:
		return "○"
	case Light:
		return "●"
	default:
		return "·"
	}
}

// Name is the human readable color, used in logs and records.
func (d Disc) Name() string {
	switch d {
	case Dark:
		return "dark"
	case Light:
		return "light"
	default:
		return "none"
	}
}
