package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

var ErrIllegalPlay = errors.New("illegal play in transcript")

// FromTranscript rebuilds a game by replaying plays from the opening
// position. Every recorded move is validated against the rebuilt state; the
// first one that cannot be reproduced fails the whole replay.
func FromTranscript(plays []Play) (*Game, error) {
	g := NewGame()
	for i, play := range plays {
		if g.Complete {
			return nil, fmt.Errorf("%w: %s at %d after the game ended", ErrIllegalPlay, play, i)
		}
		if play.Pass {
			g.Pass()
			continue
		}
		vm, ok := g.ValidateMove(g.Turn, play.Position)
		if !ok {
			log.Debug().Int("index", i).Str("play", play.String()).Str("turn", g.Turn.Name()).Msg("replay-rejected")
			return nil, fmt.Errorf("%w: %s at %d for %s", ErrIllegalPlay, play, i, g.Turn.Name())
		}
		g.Play(vm)
	}

	g.validateCompletion()
	return g, nil
}

// ReplayText parses a textual transcript and replays it.
func ReplayText(text string) (*Game, error) {
	plays, err := ParseTranscript(text)
	if err != nil {
		return nil, err
	}
	return FromTranscript(plays)
}

// validateCompletion ends the game when neither side can move, which a
// transcript does not record on its own.
func (g *Game) validateCompletion() {
	if g.Complete {
		return
	}
	g.Complete = !g.HasValidMove(Dark) && !g.HasValidMove(Light)
}
