package auth

import (
	"errors"
	"fmt"

	"nathanbeddoewebdev/padron/internal/services/auth"

	"github.com/spf13/cobra"
)

func LogoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout [host|url]",
		Short: "Remove the stored access token for a source host",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			host, err := resolveHost(cmd, args)
			if err != nil {
				return err
			}

			err = storeFactory().DeleteToken(host)
			switch {
			case errors.Is(err, auth.ErrTokenNotFound):
				fmt.Fprintf(cmd.OutOrStdout(), "No token stored for %s\n", host)
				return nil
			case err != nil:
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed token for %s\n", host)
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}
