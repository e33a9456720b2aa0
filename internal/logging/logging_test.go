package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"

	"shapes/internal/config"
)

func TestLevel(t *testing.T) {
	require.Equal(t, zerolog.DebugLevel, Level("debug"))
	require.Equal(t, zerolog.Disabled, Level("none"))
	require.Equal(t, zerolog.InfoLevel, Level("bogus"))
}

func TestSetupWritesToFile(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })
	p := filepath.Join(t.TempDir(), "shapes.log")
	closeFn, err := Setup(config.Log{Level: "info", File: p})
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Int("id", 3).Msg("spawn")
	closeFn()

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	require.Contains(t, string(data), `"message":"spawn"`)
	require.Contains(t, string(data), `"id":3`)
	require.NotContains(t, string(data), "hidden")
}

func TestSetupBadPath(t *testing.T) {
	_, err := Setup(config.Log{File: filepath.Join(t.TempDir(), "missing", "x.log")})
	require.Error(t, err)
}
