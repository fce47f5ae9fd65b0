package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"othello/meta"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("OTHELLO_TEST_VALUE", "corners")
	require.Equal(t, "corners", GetEnv("OTHELLO_TEST_VALUE", "random"))
	require.Equal(t, "random", GetEnv("OTHELLO_TEST_MISSING", "random"))
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("OTHELLO_TEST_INT", "12")
	require.Equal(t, 12, GetEnvAsInt("OTHELLO_TEST_INT", 3))

	t.Setenv("OTHELLO_TEST_INT", "twelve")
	require.Equal(t, 3, GetEnvAsInt("OTHELLO_TEST_INT", 3), "Malformed values fall back to the default")
}

func TestGetEnvAsCount(t *testing.T) {
	t.Setenv("OTHELLO_TEST_COUNT", "-4")
	require.Equal(t, 3, GetEnvAsCount("OTHELLO_TEST_COUNT", 3), "Negative counts fall back to the default")

	t.Setenv("OTHELLO_TEST_COUNT", "0")
	require.Equal(t, 0, GetEnvAsCount("OTHELLO_TEST_COUNT", 3))
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"OTHELLO_DARK", "OTHELLO_LIGHT", "OTHELLO_GAMES", "OTHELLO_WORKERS", "OTHELLO_ROLLOUTS", "OTHELLO_OUTPUT_DIR", "OTHELLO_STRESS_GAMES", "LOG_LEVEL"} {
			t.Setenv(key, "")
		}
		c := Load(filepath.Join(t.TempDir(), "missing.env"))

		require.Equal(t, "monte", c.Dark)
		require.Equal(t, "random", c.Light)
		require.Equal(t, meta.GAMES, c.Games)
		require.Equal(t, meta.GO_ROUTINES, c.Workers)
		require.Equal(t, meta.ROLLOUTS, c.Rollouts)
		require.Equal(t, meta.OUTPUT_DIR, c.OutputDir)
		require.Equal(t, meta.STRESS_GAMES, c.StressGames)
		require.Equal(t, zerolog.InfoLevel, c.LogLevel)
	})

	t.Run("from file", func(t *testing.T) {
		for _, key := range []string{"OTHELLO_DARK", "OTHELLO_GAMES", "LOG_LEVEL"} {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}
		path := filepath.Join(t.TempDir(), "test.env")
		err := os.WriteFile(path, []byte("OTHELLO_DARK=corners\nOTHELLO_GAMES=7\nLOG_LEVEL=debug\n"), 0644)
		require.NoError(t, err)

		c := Load(path)
		require.Equal(t, "corners", c.Dark)
		require.Equal(t, 7, c.Games)
		require.Equal(t, zerolog.DebugLevel, c.LogLevel)
	})

	t.Run("negative games", func(t *testing.T) {
		t.Setenv("OTHELLO_GAMES", "-3")
		c := Load(filepath.Join(t.TempDir(), "missing.env"))
		require.Equal(t, meta.GAMES, c.Games)
	})
}
