package strategy

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"

	"github.com/rs/zerolog/log"
)

type Option func(m *Monte)

var errUnfinishedRollout = errors.New("rollout did not finish")

// maxRolloutPlays bounds a rollout: 60 placements plus the passes between
// them.
const maxRolloutPlays = 2 * game.BoardCells

// ScoredPlay is a candidate move with the rollouts it won.
type ScoredPlay struct {
	Move     game.ValidMove
	Wins     int
	Rollouts int
}

// Rate is the fraction of rollouts won.
func (s ScoredPlay) Rate() float64 {
	if s.Rollouts == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Rollouts)
}

// Monte scores every legal move by finishing the game at random many times
// and plays the move that won most often. Rollouts for different candidates
// run concurrently, each on its own copy of the game. A Monte evaluates one
// game at a time.
type Monte struct {
	rollouts   int
	goroutines int
	seed       uint64
	seeded     bool
	metrics    metrics.Collector
}

func WithRollouts(rollouts int) Option {
	return func(m *Monte) {
		if rollouts > 0 {
			m.rollouts = rollouts
		}
	}
}

func WithGoroutines(goroutines int) Option {
	return func(m *Monte) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

// WithSeed makes every evaluation reproducible. Candidate i draws from a
// source seeded with seed+i.
func WithSeed(seed uint64) Option {
	return func(m *Monte) {
		m.seed = seed
		m.seeded = true
	}
}

func WithMetrics() Option {
	return func(m *Monte) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMonte(options ...Option) *Monte {
	m := &Monte{ // Default values
		rollouts:   meta.ROLLOUTS,
		goroutines: meta.GO_ROUTINES,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Monte) Name() string {
	return "monte"
}

func (m *Monte) NextPlay(g *game.Game) (game.ValidMove, bool) {
	vm, _, ok := m.Search(g)
	return vm, ok
}

// Search is NextPlay that also reports the search metrics.
func (m *Monte) Search(g *game.Game) (game.ValidMove, metrics.SearchMetric, bool) {
	scores, metric := m.Evaluate(g)
	if len(scores) == 0 {
		return game.ValidMove{}, metric, false
	}

	chosen := scores[0]
	for _, s := range scores[1:] {
		if s.Wins > chosen.Wins {
			chosen = s
		}
	}
	log.Debug().
		Str("player", g.Turn.Name()).
		Str("move", chosen.Move.String()).
		Int("wins", chosen.Wins).
		Int("candidates", len(scores)).
		Msg("monte-chose")
	return chosen.Move, metric, true
}

// Evaluate runs the rollouts for every legal move of the player to move and
// returns the tallies in enumeration order.
func (m *Monte) Evaluate(g *game.Game) ([]ScoredPlay, metrics.SearchMetric) {
	player := g.Turn
	moves := g.ValidMoves(player)
	scores := make([]ScoredPlay, len(moves))

	m.metrics.Start(m.goroutines, len(moves))

	var eg errgroup.Group
	eg.SetLimit(m.goroutines)
	for i, vm := range moves {
		start := g.Clone()
		start.Play(vm)
		rng := rand.New(rand.NewSource(m.unitSeed(i)))

		eg.Go(func() error {
			wins := 0
			for range m.rollouts {
				won, err := rollout(start, player, rng)
				if err != nil {
					return fmt.Errorf("candidate %s: %w", vm, err)
				}
				if won {
					wins++
					m.metrics.AddWin()
				}
				m.metrics.AddRollout()
			}
			scores[i] = ScoredPlay{Move: vm, Wins: wins, Rollouts: m.rollouts}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		panic(fmt.Sprintf("monte evaluation failed: %v", err))
	}

	return scores, m.metrics.Complete()
}

func (m *Monte) unitSeed(i int) uint64 {
	if m.seeded {
		return m.seed + uint64(i)
	}
	return freshSeed()
}

// rollout finishes a copy of start with random moves for both sides and
// reports whether player ends with more discs.
func rollout(start *game.Game, player game.Disc, rng *rand.Rand) (bool, error) {
	g := start.Clone()
	for plays := 0; !g.Complete; plays++ {
		if plays > maxRolloutPlays {
			return false, fmt.Errorf("%w after %d plays", errUnfinishedRollout, plays)
		}
		vm, ok := randomMove(g, rng)
		if !ok {
			g.Pass()
			continue
		}
		g.Play(vm)
	}
	return g.Leads(player), nil
}
