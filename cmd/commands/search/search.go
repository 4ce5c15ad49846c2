package search

import (
	"errors"
	"fmt"
	"os"

	"nathanbeddoewebdev/padron/internal/app"
	"nathanbeddoewebdev/padron/internal/config"
	"nathanbeddoewebdev/padron/internal/logging"
	"nathanbeddoewebdev/padron/internal/services/auth"
	"nathanbeddoewebdev/padron/internal/tui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewCommand returns the "search" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search interactively",
		Long: `Open the interactive search. The roster is loaded once when the
search starts; every query after that is answered from memory.

Keys:
  enter    search
  esc      clear the input and the result
  ctrl+t   toggle the light/dark theme (remembered in config)
  ctrl+c   quit

Set ACCESSIBLE=1 for a plain prompt loop instead of the full-window view.`,
		Args:         cobra.NoArgs,
		RunE:         func(cmd *cobra.Command, args []string) error { return Run(cmd) },
		SilenceUsage: true,
	}

	return cmd
}

// Run starts the interactive search with the settings resolved from cmd.
func Run(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	settings, err := app.ResolveWith(cmd, cfg)
	if err != nil {
		return err
	}

	opts := tui.SearchOptions{
		Variant:      settings.Variant.Name,
		Source:       settings.Source,
		WithSchedule: settings.Variant.Columns.HasSchedule(),
		Theme:        settings.Theme,
	}

	if os.Getenv("ACCESSIBLE") != "" {
		svc := settings.NewService(auth.DefaultStore())
		err := tui.RunAccessibleSearch(cmd.Context(), svc, opts, cmd.OutOrStdout())
		if errors.Is(err, tui.ErrAborted) {
			return nil
		}
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("search needs a terminal; use \"padron lookup <query>\" in scripts")
	}

	// The TUI owns the screen, so logs wait in memory until it exits.
	var buf logging.Buffer
	logging.Setup(&buf, settings.LogLevel)
	defer func() {
		logging.Setup(cmd.ErrOrStderr(), settings.LogLevel)
		_ = buf.FlushTo(cmd.ErrOrStderr())
	}()

	svc := settings.NewService(auth.DefaultStore())
	outcome, err := tui.RunSearch(cmd.Context(), svc, opts)
	if err != nil {
		return err
	}

	if outcome != nil && outcome.Theme != settings.Theme {
		cfg.Theme = outcome.Theme
		if err := cfg.Save(); err != nil {
			logging.ForComponent(logging.CompCLI).Warn("could not save theme", "error", err)
		}
	}
	return nil
}
