package auth

import (
	"fmt"
	"os"

	"nathanbeddoewebdev/padron/internal/tui"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func StatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [host|url]",
		Short: "Show whether a token is stored for a source host",
		Long: `Show whether an access token is stored for a source host.

Without an argument the host of the configured source is checked.

Example:
  padron auth status`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFactory()

			var hosts []string
			if host, err := resolveHost(cmd, args); err == nil {
				hosts = append(hosts, host)
			}

			// Use TUI in interactive terminal.
			if term.IsTerminal(int(os.Stdout.Fd())) {
				if err := tui.RunAuthStatus(store, hosts); err != nil {
					return fmt.Errorf("auth status failed: %w", err)
				}
				return nil
			}

			// Non-interactive fallback.
			if len(hosts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Source is a local file; no token needed.")
				return nil
			}

			for _, s := range tui.CheckHosts(store, hosts) {
				switch {
				case s.OK:
					fmt.Fprintf(cmd.OutOrStdout(), "%s: logged in\n", s.Host)
				case s.Status == "not authenticated":
					fmt.Fprintf(cmd.OutOrStdout(), "%s: not logged in\n", s.Host)
				default:
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", s.Host, s.Status)
				}
			}
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}
