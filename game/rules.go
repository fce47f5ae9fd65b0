package game

import "slices"

// ValidMove is a legal target cell together with every disc it flips.
// Flips are unique and sorted ascending.
type ValidMove struct {
	Position Position
	Flips    []Position
}

// Score is the number of discs the move flips.
func (vm ValidMove) Score() int {
	return len(vm.Flips)
}

func (vm ValidMove) String() string {
	return vm.Position.String()
}

// ValidateMove checks whether player may place a disc at p and returns the
// consolidated move when it can.
func (g *Game) ValidateMove(player Disc, p Position) (ValidMove, bool) {
	if g.Board.Get(p) != None {
		return ValidMove{}, false
	}
	flips := g.flipsFrom(player, p, nil)
	if len(flips) == 0 {
		return ValidMove{}, false
	}
	return ValidMove{Position: p, Flips: normalize(flips)}, true
}

// ValidMoves lists every legal move for player, ordered by position.
//
// Moves are discovered from whichever origin set is smaller: the player's
// own discs (scanning out over opponent runs to an empty cell) or the empty
// cells (scanning out over opponent runs to an own disc).
func (g *Game) ValidMoves(player Disc) []ValidMove {
	if g.Board.Count(player) < g.Empty {
		return g.movesFromOwn(player)
	}
	return g.movesFromEmpty(player)
}

// HasValidMove reports whether player has at least one legal move.
func (g *Game) HasValidMove(player Disc) bool {
	for p := range g.Board.PositionsOf(None) {
		if g.canMove(player, p) {
			return true
		}
	}
	return false
}

// FlipsFor returns the discs player would flip by playing at p, in
// discovery order. The result is empty when the move is illegal.
func (g *Game) FlipsFor(player Disc, p Position) []Position {
	if g.Board.Get(p) != None {
		return nil
	}
	return g.flipsFrom(player, p, nil)
}

func (g *Game) movesFromEmpty(player Disc) []ValidMove {
	var set moveSet
	buf := make([]Position, 0, 32)
	for p := range g.Board.PositionsOf(None) {
		buf = g.flipsFrom(player, p, buf[:0])
		set.add(p, buf)
	}
	return set.moves()
}

func (g *Game) movesFromOwn(player Disc) []ValidMove {
	var set moveSet
	opponent := player.Opposite()
	for origin := range g.Board.PositionsOf(player) {
		for _, ray := range &rays[origin] {
			run := 0
			for _, p := range ray[1:] {
				disc := g.Board.Get(p)
				if disc == opponent {
					run++
					continue
				}
				if disc == None && run > 0 {
					set.add(p, ray[1:1+run])
				}
				break
			}
		}
	}
	return set.moves()
}

// flipsFrom appends to buf the opponent discs bracketed between origin and
// another of player's discs along each ray.
func (g *Game) flipsFrom(player Disc, origin Position, buf []Position) []Position {
	opponent := player.Opposite()
	for _, ray := range &rays[origin] {
		run := 0
		for _, p := range ray[1:] {
			disc := g.Board.Get(p)
			if disc == opponent {
				run++
				continue
			}
			if disc == player && run > 0 {
				buf = append(buf, ray[1:1+run]...)
			}
			break
		}
	}
	return buf
}

func (g *Game) canMove(player Disc, origin Position) bool {
	opponent := player.Opposite()
	for _, ray := range &rays[origin] {
		run := 0
		for _, p := range ray[1:] {
			disc := g.Board.Get(p)
			if disc == opponent {
				run++
				continue
			}
			if disc == player && run > 0 {
				return true
			}
			break
		}
	}
	return false
}

// moveSet merges partial flip sets found for the same target cell.
type moveSet struct {
	flips   [BoardCells][]Position
	targets []Position
}

func (s *moveSet) add(target Position, flips []Position) {
	if len(flips) == 0 {
		return
	}
	if s.flips[target] == nil {
		s.targets = append(s.targets, target)
	}
	s.flips[target] = append(s.flips[target], flips...)
}

func (s *moveSet) moves() []ValidMove {
	slices.Sort(s.targets)
	moves := make([]ValidMove, len(s.targets))
	for i, target := range s.targets {
		moves[i] = ValidMove{Position: target, Flips: normalize(s.flips[target])}
	}
	return moves
}

func normalize(flips []Position) []Position {
	out := slices.Clone(flips)
	slices.Sort(out)
	return slices.Compact(out)
}
