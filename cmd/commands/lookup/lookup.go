package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"nathanbeddoewebdev/padron/internal/app"
	"nathanbeddoewebdev/padron/internal/domain"
	"nathanbeddoewebdev/padron/internal/lookup"
	"nathanbeddoewebdev/padron/internal/search"
	"nathanbeddoewebdev/padron/internal/services/auth"
	"nathanbeddoewebdev/padron/internal/tui"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewCommand returns the "lookup" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <query>",
		Short: "Look up one record and print it",
		Long: `Load the roster, look up a single record and print it.

The query is a DNI for the comisiones variant (separators such as dots
are ignored) or a libreta number for the libreta variant. The command
exits with a non-zero status when no record matches.

The artificial search delay is skipped unless --delay is given.

Examples:
  padron lookup 43.323.124
  padron lookup 1234 --variant libreta
  padron lookup 43323124 -o json`,
		Args:         cobra.ExactArgs(1),
		RunE:         runLookup,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runLookup(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	output = strings.ToLower(strings.TrimSpace(output))
	if output != "table" && output != "json" {
		return fmt.Errorf("invalid output format %q (must be table or json)", output)
	}

	query := args[0]
	if strings.TrimSpace(query) == "" {
		return domain.ErrEmptyQuery
	}

	settings, err := app.Resolve(cmd)
	if err != nil {
		return err
	}

	var opts []search.Option
	if !settings.DelaySet {
		opts = append(opts, search.WithDelay(0))
	}
	svc := settings.NewService(auth.DefaultStore(), opts...)

	if err := load(cmd.Context(), svc); err != nil {
		return err
	}
	if err := svc.LoadErr(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not load roster from %s: %v\n", settings.Source, err)
	}

	res, err := svc.Search(cmd.Context(), query)
	if err != nil {
		return err
	}
	if !res.Found() {
		return &lookup.NotFoundError{Label: res.Label, Query: res.Query}
	}

	if output == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res.Student)
	}
	return tui.WriteStudent(cmd.OutOrStdout(), *res.Student, settings.Variant.Columns.HasSchedule())
}

// load fetches the roster, behind a spinner when stderr is a terminal.
func load(ctx context.Context, svc *search.Service) error {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		svc.Load(ctx)
		return nil
	}

	err := spinner.New().
		Title("Loading records...").
		Accessible(os.Getenv("ACCESSIBLE") != "").
		Output(os.Stderr).
		Context(ctx).
		ActionWithErr(func(ctx context.Context) error {
			svc.Load(ctx)
			return nil
		}).
		Run()
	if errors.Is(err, context.Canceled) {
		return tui.ErrAborted
	}
	return err
}
