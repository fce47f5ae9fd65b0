package experiments

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"othello/config"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/strategy"

	"github.com/rs/zerolog/log"
)

var ErrBadCount = errors.New("count must not be negative")

// Result holds everything a versus series produced.
type Result struct {
	Tally       metrics.Tally
	GameRecords []metrics.GameRecord
	MoveRecords []metrics.MoveRecord
}

// Versus plays games between dark and light on up to workers goroutines.
// Every game gets fresh strategy instances, so strategies never share state
// across games.
func Versus(ctx context.Context, dark, light metrics.AgentConfig, games, workers int) (Result, error) {
	if games < 0 {
		return Result{}, fmt.Errorf("%w: %d games", ErrBadCount, games)
	}
	newDark, err := newFactory(dark)
	if err != nil {
		return Result{}, err
	}
	newLight, err := newFactory(light)
	if err != nil {
		return Result{}, err
	}

	type outcome struct {
		gameMetric  metrics.GameMetric
		moveMetrics []metrics.MoveMetric
	}
	outcomes := make([]outcome, games)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(workers, 1))
	for i := range games {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, gameMetric, moveMetrics := engine.LocalEngine(newDark(), newLight()).Run()
			outcomes[i] = outcome{gameMetric: gameMetric, moveMetrics: moveMetrics}
			log.Debug().Msgf("completed game %d of %d with winner: %s", i+1, games, gameMetric.Winner)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Result{}, fmt.Errorf("versus interrupted: %w", err)
	}

	result := Result{Tally: metrics.Tally{Dark: dark.Strategy, Light: light.Strategy}}
	for i, o := range outcomes {
		id := i + 1
		result.Tally.Games++
		result.Tally.DarkPoints += o.gameMetric.DarkScore
		result.Tally.LightPoints += o.gameMetric.LightScore
		switch o.gameMetric.Winner {
		case game.Dark.Name():
			result.Tally.DarkWins++
		case game.Light.Name():
			result.Tally.LightWins++
		default:
			result.Tally.Ties++
		}

		result.GameRecords = append(result.GameRecords, metrics.GameRecord{
			ID:         id,
			Dark:       dark.ID,
			Light:      light.ID,
			GameMetric: o.gameMetric,
		})
		for _, mm := range o.moveMetrics {
			result.MoveRecords = append(result.MoveRecords, metrics.MoveRecord{
				Game:       id,
				MoveMetric: mm,
			})
		}
	}
	return result, nil
}

// RunVersusExperiment plays the configured matchup and stores its records
// under the configured output directory.
func RunVersusExperiment(ctx context.Context, c config.Config) (metrics.Tally, error) {
	dark := metrics.AgentConfig{ID: 1, Strategy: c.Dark, Rollouts: c.Rollouts, Goroutines: c.Workers}
	light := metrics.AgentConfig{ID: 2, Strategy: c.Light, Rollouts: c.Rollouts, Goroutines: c.Workers}

	log.Info().Msgf("starting versus experiment: %s (dark) against %s (light) for %d games...", c.Dark, c.Light, c.Games)
	result, err := Versus(ctx, dark, light, c.Games, c.Workers)
	if err != nil {
		return metrics.Tally{}, err
	}
	t := result.Tally
	log.Info().Msgf("completed versus experiment: %s won %d (%d points), %s won %d (%d points), %d ties",
		t.Dark, t.DarkWins, t.DarkPoints, t.Light, t.LightWins, t.LightPoints, t.Ties)

	writer, err := metrics.NewWriter(c.OutputDir, "versus")
	if err != nil {
		return t, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs([]metrics.AgentConfig{dark, light}); err != nil {
		return t, fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteTallies([]metrics.Tally{t}); err != nil {
		return t, fmt.Errorf("failed to store tallies: %w", err)
	}
	if err := writer.WriteGameRecords(result.GameRecords); err != nil {
		return t, fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(result.MoveRecords); err != nil {
		return t, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return t, nil
}

// newFactory validates the agent's strategy name and returns a constructor
// for fresh instances configured from the agent.
func newFactory(agent metrics.AgentConfig) (func() strategy.Strategy, error) {
	create, err := strategy.Factory(agent.Strategy)
	if err != nil {
		return nil, err
	}
	if _, ok := create().(*strategy.Monte); ok {
		return func() strategy.Strategy {
			return strategy.NewMonte(
				strategy.WithRollouts(agent.Rollouts),
				strategy.WithGoroutines(agent.Goroutines),
				strategy.WithMetrics(),
			)
		}, nil
	}
	return create, nil
}
