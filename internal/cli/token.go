package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/victornm/quizduel/internal/auth"
)

// newTokenCmd mints a bearer token signed with auth.secret, for local testing
// against a running server.
func newTokenCmd(configPath *string) *cobra.Command {
	var (
		name string
		ttl  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token <user-id>",
		Short: "Sign a bearer token for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if c.Auth.Secret == "" {
				return fmt.Errorf("auth.secret is not configured")
			}

			token, err := auth.NewVerifier(c.Auth.Secret).Sign(auth.Identity{UserID: args[0], UserName: name}, ttl)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name carried in the token")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
