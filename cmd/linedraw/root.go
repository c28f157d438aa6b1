package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/staticmode/painter"
)

// app is the state shared by every subcommand, built once the flags are parsed.
type app struct {
	cfg    Config
	logger *slog.Logger
}

func (a *app) painter() *painter.Painter {
	return painter.New(painter.WithLength(a.cfg.Length), painter.WithLogger(a.logger))
}

func (a *app) label(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(a.cfg.LabelColor)).Bold(true).Render(text)
}

func newRootCmd(out io.Writer) *cobra.Command {
	var (
		configPath string
		logLevel   string
		length     int
	)
	a := &app{}

	cmd := &cobra.Command{
		Use:   "linedraw",
		Short: "Draw ASCII lines styled by checked mode combinations",
		Long: `linedraw draws horizontal ASCII lines. Each line is styled by a combination
of a line style (dotted, dashed, solid) and an end style (no_ends, arrows,
circles). Combinations are composed in code and checked before drawing.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := DefaultConfig()
			if configPath != "" {
				loaded, err := LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if cmd.Flags().Changed("length") {
				cfg.Length = length
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			var level slog.Level
			if err := level.UnmarshalText([]byte(logLevel)); err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
			}

			a.cfg = cfg
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			a.logger.Debug("configuration resolved", "length", cfg.Length, "labels", cfg.Labels, "config", configPath)

			return nil
		},
	}
	cmd.SetOut(out)

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	cmd.PersistentFlags().IntVar(&length, "length", painter.DefaultLength, "number of body glyphs per line")

	cmd.AddCommand(newDemoCmd(a), newCheckCmd(a))

	return cmd
}
