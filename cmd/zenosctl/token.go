package main

import (
	"fmt"
	"time"

	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/auth"
	timeprovider "github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/time"
	"github.com/spf13/cobra"
)

func adminTokenCmd() *cobra.Command {
	var (
		secret  string
		issuer  string
		subject string
		role    string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "admin-token",
		Short: "Mint a bearer token for the administrative endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := auth.NewTokenManager(secret, issuer, timeprovider.NewRealTimeProvider())
			if err != nil {
				return fmt.Errorf("%w (set --secret or TP_JWT_SECRET)", err)
			}

			token, expiresAt, err := tokens.Issue(subject, role, ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", expiresAt.UTC().Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVar(&secret, "secret", envOr("TP_JWT_SECRET", ""), "HMAC secret (default $TP_JWT_SECRET)")
	cmd.Flags().StringVar(&issuer, "issuer", "topup-processor", "Token issuer; must match auth.issuer")
	cmd.Flags().StringVar(&subject, "subject", "ops", "Token subject")
	cmd.Flags().StringVar(&role, "role", auth.RoleAdmin, "Role claim")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "Token lifetime")

	return cmd
}
