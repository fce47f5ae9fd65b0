package game

import "slices"

// Direction is one of the 8 compass directions, clockwise from north.
// North points towards row 0.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

const Directions = 8

var steps = [Directions]struct{ dx, dy int }{
	North:     {0, -1},
	NorthEast: {1, -1},
	East:      {1, 0},
	SouthEast: {1, 1},
	South:     {0, 1},
	SouthWest: {-1, 1},
	West:      {-1, 0},
	NorthWest: {-1, -1},
}

// Ray is the ordered list of cells from an origin (inclusive) to the board
// edge in one direction. A ray never wraps onto another row or column.
type Ray []Position

// rays holds the precomputed lines of play for every cell. It is built once
// and only read afterwards.
var rays = buildRays()

func buildRays() [BoardCells][Directions]Ray {
	var table [BoardCells][Directions]Ray
	for index := 0; index < BoardCells; index++ {
		origin := NewPosition(index)
		for dir := Direction(0); dir < Directions; dir++ {
			table[index][dir] = trace(origin, dir)
		}
	}
	return table
}

func trace(origin Position, dir Direction) Ray {
	ray := make(Ray, 0, BoardWidth)
	ray = append(ray, origin)
	x, y := origin.XY()
	step := steps[dir]
	for {
		x, y = x+step.dx, y+step.dy
		if x < 0 || x >= BoardWidth || y < 0 || y >= BoardWidth {
			return ray
		}
		ray = append(ray, PositionXY(x, y))
	}
}

// RaysFor returns a copy of the 8 rays starting at p.
func RaysFor(p Position) [Directions]Ray {
	var out [Directions]Ray
	for dir, ray := range &rays[p] {
		out[dir] = slices.Clone(ray)
	}
	return out
}

// RayFor returns a copy of the ray starting at p towards dir.
func RayFor(p Position, dir Direction) Ray {
	return slices.Clone(rays[p][dir])
}
