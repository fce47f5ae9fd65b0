// Package strategy provides move selection policies for Othello. Every
// strategy answers for the player whose turn it is.
package strategy

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"othello/game"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy picks the next move for the player to move in g. It reports false
// when that player has no legal move and must pass. Implementations must not
// mutate g.
type Strategy interface {
	Name() string
	NextPlay(g *game.Game) (game.ValidMove, bool)
}

var registry = map[string]func() Strategy{
	"constrain": func() Strategy { return Constrain{} },
	"corners":   func() Strategy { return Corners{} },
	"maximize":  func() Strategy { return Maximize{} },
	"minimize":  func() Strategy { return Minimize{} },
	"monte":     func() Strategy { return NewMonte() },
	"random":    func() Strategy { return NewRandom() },
	"simple":    func() Strategy { return Simple{} },
}

// FromName returns a new instance of the named strategy with default settings.
func FromName(name string) (Strategy, error) {
	create, err := Factory(name)
	if err != nil {
		return nil, err
	}
	return create(), nil
}

// Factory returns the constructor of the named strategy. Every call of the
// constructor yields an independent instance.
func Factory(name string) (func() Strategy, error) {
	create, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return create, nil
}

// Names lists the registered strategy names in ascending order.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// All returns one new instance of every registered strategy, ordered by name.
func All() []Strategy {
	names := Names()
	strategies := make([]Strategy, len(names))
	for i, name := range names {
		strategies[i] = registry[name]()
	}
	return strategies
}

// Solve plays g to completion, letting s choose for both sides.
func Solve(s Strategy, g *game.Game) {
	for !g.Complete {
		vm, ok := s.NextPlay(g)
		if !ok {
			g.Pass()
			continue
		}
		g.Play(vm)
	}
}

// best returns the highest scoring move. The first of equally scored moves
// wins.
func best(moves []game.ValidMove, score func(game.ValidMove) int) (game.ValidMove, bool) {
	if len(moves) == 0 {
		return game.ValidMove{}, false
	}
	chosen, top := moves[0], score(moves[0])
	for _, vm := range moves[1:] {
		if s := score(vm); s > top {
			chosen, top = vm, s
		}
	}
	return chosen, true
}
