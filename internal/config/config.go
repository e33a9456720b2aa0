package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"shapes/internal/geom"
)

// EnvPrefix prefixes every environment override, e.g. SHAPES_LOG_LEVEL.
const EnvPrefix = "SHAPES"

type Config struct {
	// Seed drives colors and outline choices. Zero picks a random seed.
	Seed uint64 `mapstructure:"seed"`
	// Side is the side of a spawned shape's bounding square, canvas units.
	Side float64 `mapstructure:"side"`
	// SnapshotDir receives PNG snapshots.
	SnapshotDir string `mapstructure:"snapshot_dir"`

	Log Log `mapstructure:"log"`
}

type Log struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

var flagNames = []string{"seed", "side", "snapshot_dir", "log.level", "log.file"}

func DefineFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64P("seed", "s", 0, "random seed, 0 for a random one")
	cmd.Flags().Float64P("side", "", geom.DefaultSide, "side of a spawned shape in canvas units")
	cmd.Flags().StringP("snapshot_dir", "o", ".", "directory for PNG snapshots")
	cmd.Flags().StringP("log.level", "", "info", "set the log level: trace, debug, info, error, fatal or none")
	cmd.Flags().StringP("log.file", "", "", "optional log file - if not specified logs are discarded")
}

// GetConfig merges defaults, flags and SHAPES_* environment variables.
func GetConfig(cmd *cobra.Command) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("seed", 0)
	v.SetDefault("side", geom.DefaultSide)
	v.SetDefault("snapshot_dir", ".")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	if cmd != nil {
		for _, name := range flagNames {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := v.BindPFlag(name, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return Config{}, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

func (c Config) Validate() error {
	if math.IsNaN(c.Side) || math.IsInf(c.Side, 0) {
		return fmt.Errorf("side %v must be a finite number", c.Side)
	}
	if c.Side <= 2*geom.DefaultInset {
		return fmt.Errorf("side %v must exceed twice the stroke inset %v", c.Side, geom.DefaultInset)
	}
	if c.SnapshotDir == "" {
		return fmt.Errorf("snapshot_dir must not be empty")
	}
	return nil
}
