package config

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"shapes/internal/geom"
)

func newCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "shapes"}
	DefineFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestGetConfigDefaults(t *testing.T) {
	conf, err := GetConfig(newCmd(t))
	require.NoError(t, err)
	require.Equal(t, uint64(0), conf.Seed)
	require.Equal(t, geom.DefaultSide, conf.Side)
	require.Equal(t, ".", conf.SnapshotDir)
	require.Equal(t, "info", conf.Log.Level)
	require.Empty(t, conf.Log.File)
}

func TestGetConfigFlags(t *testing.T) {
	conf, err := GetConfig(newCmd(t, "--seed", "17", "--side", "90", "-o", "/tmp/snaps", "--log.level", "debug"))
	require.NoError(t, err)
	require.Equal(t, uint64(17), conf.Seed)
	require.Equal(t, 90.0, conf.Side)
	require.Equal(t, "/tmp/snaps", conf.SnapshotDir)
	require.Equal(t, "debug", conf.Log.Level)
}

func TestGetConfigEnv(t *testing.T) {
	t.Setenv("SHAPES_SEED", "5")
	t.Setenv("SHAPES_LOG_FILE", "/tmp/shapes.log")
	conf, err := GetConfig(newCmd(t))
	require.NoError(t, err)
	require.Equal(t, uint64(5), conf.Seed)
	require.Equal(t, "/tmp/shapes.log", conf.Log.File)
}

func TestGetConfigRejectsTinySide(t *testing.T) {
	_, err := GetConfig(newCmd(t, "--side", "3"))
	require.Error(t, err)
}

func TestGetConfigRejectsNonFiniteSide(t *testing.T) {
	for _, side := range []string{"NaN", "+Inf", "-Inf"} {
		t.Run(side, func(t *testing.T) {
			_, err := GetConfig(newCmd(t, "--side", side))
			require.ErrorContains(t, err, "finite")
		})
	}
}

func TestGetConfigNilCommand(t *testing.T) {
	conf, err := GetConfig(nil)
	require.NoError(t, err)
	require.Equal(t, geom.DefaultSide, conf.Side)
}
