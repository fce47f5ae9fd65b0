package main

import (
	"context"
	"os"
	"os/signal"

	"othello/config"
	"othello/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	c := config.Load()
	zerolog.SetGlobalLevel(c.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := experiments.Stress(ctx, c.StressGames, c.Workers); err != nil {
		log.Fatal().Err(err).Msg("replay stress failed")
	}

	if _, err := experiments.RunVersusExperiment(ctx, c); err != nil {
		log.Fatal().Err(err).Msg("versus experiment failed")
	}
}
