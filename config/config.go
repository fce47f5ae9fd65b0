// Package config reads the harness settings from the environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"othello/meta"
)

type Config struct {
	Dark        string // Strategy name
	Light       string // Strategy name
	Games       int
	Workers     int
	Rollouts    int
	OutputDir   string
	StressGames int
	LogLevel    zerolog.Level
}

// Load reads a .env file when one exists, then the environment.
func Load(files ...string) Config {
	err := godotenv.Load(files...)
	if err != nil {
		log.Debug().Err(err).Msg("no .env file found, using environment variables")
	}

	level, err := zerolog.ParseLevel(GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		log.Warn().Msgf("invalid LOG_LEVEL %q, using info", os.Getenv("LOG_LEVEL"))
		level = zerolog.InfoLevel
	}

	return Config{
		Dark:        GetEnv("OTHELLO_DARK", "monte"),
		Light:       GetEnv("OTHELLO_LIGHT", "random"),
		Games:       GetEnvAsCount("OTHELLO_GAMES", meta.GAMES),
		Workers:     GetEnvAsCount("OTHELLO_WORKERS", meta.GO_ROUTINES),
		Rollouts:    GetEnvAsCount("OTHELLO_ROLLOUTS", meta.ROLLOUTS),
		OutputDir:   GetEnv("OTHELLO_OUTPUT_DIR", meta.OUTPUT_DIR),
		StressGames: GetEnvAsCount("OTHELLO_STRESS_GAMES", meta.STRESS_GAMES),
		LogLevel:    level,
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Msgf("invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsCount is GetEnvAsInt for values that cannot be negative.
func GetEnvAsCount(key string, defaultValue int) int {
	value := GetEnvAsInt(key, defaultValue)
	if value < 0 {
		log.Warn().Msgf("negative value for %s: %d, using default: %d", key, value, defaultValue)
		return defaultValue
	}
	return value
}
