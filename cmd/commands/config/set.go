package config

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/padron/internal/config"

	"github.com/spf13/cobra"
)

// SetCommand returns the "config set" command.
func SetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: "Set a persistent configuration value. An empty value restores the default.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  padron config set source \"Comisiones con Horarios.xlsx\"\n" +
			"  padron config set variant libreta\n" +
			"  padron config set delay 0s",
		Args:         cobra.ExactArgs(2),
		RunE:         runSet,
		SilenceUsage: true,
	}

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	spec := config.Lookup(args[0])
	if spec == nil {
		return fmt.Errorf("unknown configuration key %q (valid: %s)", args[0], strings.Join(config.KeyNames(), ", "))
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	value := args[1]
	if strings.TrimSpace(value) == "" {
		spec.Set(cfg, "")
	} else if err := spec.Apply(cfg, value); err != nil {
		return err
	}

	if err := cfg.Save(); err != nil {
		return err
	}

	if got := spec.Get(cfg); got != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s set to %q\n", spec.Name, got)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s reset to default\n", spec.Name)
	}
	return nil
}
