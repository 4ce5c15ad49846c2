package auth

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"nathanbeddoewebdev/padron/internal/tui"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login [host|url]",
		Short: "Store an access token for a source host",
		Long: `Store an access token for a source host using the local keychain.

Without an argument the host of the configured source is used. The token
is read from --token, from an interactive prompt in a terminal, or from
the first line of stdin.

Examples:
  padron auth login https://files.example.com/padron.xlsx
  echo "$TOKEN" | padron auth login files.example.com`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runLogin,
		SilenceUsage: true,
	}

	cmd.Flags().String("token", "", "Access token (optional, overrides prompt)")

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	host, err := resolveHost(cmd, args)
	if err != nil {
		return err
	}
	store := storeFactory()

	token, _ := cmd.Flags().GetString("token")
	token = strings.TrimSpace(token)

	if token == "" && term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		result, err := tui.RunAuthLogin(host, store)
		if err != nil {
			return err
		}
		if result == nil || !result.Saved {
			return tui.ErrAborted
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved token for %s\n", host)
		return nil
	}

	if token == "" {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("token cannot be empty")
		}
		token = strings.TrimSpace(line)
	}
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	if err := store.SetToken(host, token); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved token for %s\n", host)
	return nil
}
