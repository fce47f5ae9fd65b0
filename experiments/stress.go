package experiments

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"othello/game"
	"othello/strategy"

	"github.com/rs/zerolog/log"
)

var ErrDivergence = errors.New("replay diverged from play")

// Stress plays a number of random games and replays every transcript, failing on
// the first game whose replay does not rebuild the played state.
func Stress(ctx context.Context, games, workers int) error {
	if games < 0 {
		return fmt.Errorf("%w: %d games", ErrBadCount, games)
	}
	log.Info().Msgf("starting replay stress over %d games...", games)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(workers, 1))
	for i := range games {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return checkReplay(i+1, strategy.NewRandom())
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	log.Info().Msgf("completed replay stress over %d games", games)
	return nil
}

func checkReplay(id int, s strategy.Strategy) error {
	played := game.NewGame()
	strategy.Solve(s, played)
	transcript := game.FormatTranscript(played.Transcript, ",")

	replayed, err := game.FromTranscript(played.Transcript)
	if err != nil {
		return fmt.Errorf("%w: game %d %s: %w", ErrDivergence, id, transcript, err)
	}
	if !played.Equal(replayed) {
		log.Error().Int("game", id).Str("transcript", transcript).Msg("replay-diverged")
		return fmt.Errorf("%w: game %d %s\nplayed:\n%s\nreplayed:\n%s", ErrDivergence, id, transcript, played, replayed)
	}
	return nil
}
