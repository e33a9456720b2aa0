package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"shapes/internal/config"
	"shapes/internal/logging"
	"shapes/internal/tui"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "shapes",
		Short:         "Tap to spawn shapes, drag, pinch and rotate them",
		Long:          "shapes – a terminal drawing toy: click to spawn a random shape, drag it around, use the wheel or +/- to pinch and [ ] to rotate",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd)
		},
	}
	config.DefineFlags(cmd)
	return cmd
}

func run(cmd *cobra.Command) error {
	cfg, err := config.GetConfig(cmd)
	if err != nil {
		return err
	}
	closeLog, err := logging.Setup(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	log.Info().Uint64("seed", cfg.Seed).Float64("side", cfg.Side).Msg("starting shapes")
	p := tea.NewProgram(tui.New(cfg), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("program exited with error")
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
