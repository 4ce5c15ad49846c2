package config

import (
	"nathanbeddoewebdev/padron/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage padron configuration",
		Long: "View and modify persistent padron settings.\n\n" +
			"Configuration is stored at ~/.config/padron/config.json.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
