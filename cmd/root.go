package cmd

import (
	"context"
	"os"
	"os/signal"

	"nathanbeddoewebdev/padron/cmd/commands/auth"
	cfgcmd "nathanbeddoewebdev/padron/cmd/commands/config"
	"nathanbeddoewebdev/padron/cmd/commands/lookup"
	"nathanbeddoewebdev/padron/cmd/commands/search"
	"nathanbeddoewebdev/padron/cmd/commands/variants"
	"nathanbeddoewebdev/padron/internal/app"
	"nathanbeddoewebdev/padron/internal/logging"
	"nathanbeddoewebdev/padron/internal/variant"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "padron",
		Short: "Look up a student record by DNI or libreta number",
		Long: `padron loads a student roster spreadsheet (XLSX) once and finds a single
record by national ID (DNI) or by record number (libreta).

Run without arguments in a terminal to open the interactive search.

Quick start:
  padron                                   # interactive search
  padron lookup 43323124                   # one lookup, printed as a table
  padron lookup 1234 --variant libreta -o json
  padron config set source ~/Alumnos.xlsx  # remember the workbook`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: setupLogging,
		SilenceUsage:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if term.IsTerminal(int(os.Stdout.Fd())) {
				return search.Run(cmd)
			}
			return cmd.Help()
		},
	}

	app.AddPersistentFlags(cmd)

	cmd.AddCommand(auth.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(lookup.NewCommand())
	cmd.AddCommand(search.NewCommand())
	cmd.AddCommand(variants.NewCommand())

	return cmd
}

// setupLogging points the root logger at stderr with the requested level.
// The interactive search re-routes it to a buffer while the TUI runs.
func setupLogging(cmd *cobra.Command, args []string) error {
	level, err := logging.ResolveLevel(cmd.Flag(app.FlagLogLevel).Value.String())
	if err != nil {
		return err
	}
	logging.Setup(cmd.ErrOrStderr(), level)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	variant.RegisterBuiltins()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var root = rootCmd()
	err := root.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}
