package auth

import (
	"fmt"

	"nathanbeddoewebdev/padron/internal/app"
	"nathanbeddoewebdev/padron/internal/services/auth"

	"github.com/spf13/cobra"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage access tokens for remote workbooks",
		Long: `Manage access tokens for remote workbooks.

When the source is an http(s) URL, padron sends the token stored for the
URL's host as a bearer token. Tokens live in the OS keychain.`,
	}

	cmd.AddCommand(LoginCommand())
	cmd.AddCommand(LogoutCommand())
	cmd.AddCommand(StatusCommand())

	return cmd
}

// storeFactory is swapped in tests.
var storeFactory = auth.DefaultStore

// resolveHost returns the host named by args[0] (a host or a URL), or the
// host of the configured source when no argument is given.
func resolveHost(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		if host := auth.HostOf(args[0]); host != "" {
			return host, nil
		}
		if host := auth.NormalizeHost(args[0]); host != "" {
			return host, nil
		}
		return "", fmt.Errorf("host is required")
	}

	settings, err := app.Resolve(cmd)
	if err != nil {
		return "", err
	}
	host := auth.HostOf(settings.Source)
	if host == "" {
		return "", fmt.Errorf("source %q is a local file; pass a host or URL", settings.Source)
	}
	return host, nil
}
