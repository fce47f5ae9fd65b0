package strategy

import (
	"math"

	"golang.org/x/exp/rand"
	"lukechampine.com/frand"

	"othello/game"
)

// Random picks uniformly among the legal moves. A Random owns its source and
// is not safe for concurrent use.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random seeded from the system entropy pool.
func NewRandom() *Random {
	return NewSeededRandom(freshSeed())
}

// NewSeededRandom returns a Random with a reproducible sequence of choices.
func NewSeededRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Name() string {
	return "random"
}

func (r *Random) NextPlay(g *game.Game) (game.ValidMove, bool) {
	return randomMove(g, r.rng)
}

func randomMove(g *game.Game, rng *rand.Rand) (game.ValidMove, bool) {
	moves := g.ValidMoves(g.Turn)
	if len(moves) == 0 {
		return game.ValidMove{}, false
	}
	return moves[rng.Intn(len(moves))], true
}

func freshSeed() uint64 {
	return frand.Uint64n(math.MaxUint64)
}
