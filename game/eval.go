package game

// Region is a coarse positional class of a cell used by heuristic players.
type Region int

const (
	// BadCorner cells touch an empty corner and hand it to the opponent.
	BadCorner Region = iota - 1
	Neutral
	Corner
)

var corners = [4]Position{0, 7, 56, 63}

// cornerNeighbors maps each corner to the cells touching it.
var cornerNeighbors = map[Position][3]Position{
	0:  {1, 8, 9},
	7:  {6, 14, 15},
	56: {48, 49, 57},
	63: {54, 55, 62},
}

// Corners returns the four corner cells.
func Corners() [4]Position {
	return corners
}

// RegionOf classifies p on the current board.
func (g *Game) RegionOf(p Position) Region {
	for _, corner := range corners {
		if p == corner {
			return Corner
		}
		if g.Board.Get(corner) != None {
			continue
		}
		for _, n := range cornerNeighbors[corner] {
			if p == n {
				return BadCorner
			}
		}
	}
	return Neutral
}

// Mobility is the number of legal moves available to player.
func (g *Game) Mobility(player Disc) int {
	return len(g.ValidMoves(player))
}

// Margin returns player's disc count minus the opponent's.
func (g *Game) Margin(player Disc) int {
	if player == Dark {
		return g.Dark - g.Light
	}
	return g.Light - g.Dark
}
