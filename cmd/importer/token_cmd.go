package main

import (
	"context"
	"fmt"
	"time"

	authProcessor "agency-server/internal/auth/processor"
	"agency-server/internal/config"
	"agency-server/internal/observability"

	"github.com/spf13/cobra"
)

type tokenIssuer interface {
	Issue(ctx context.Context, subject string, ttl time.Duration) (string, error)
}

// envTokenIssuer signs with the JWT secret from the environment
type envTokenIssuer struct{}

func (envTokenIssuer) Issue(ctx context.Context, subject string, ttl time.Duration) (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	p := authProcessor.New(cfg.Auth.JWTSecret, observability.NewLogger())
	return p.GenerateJWTToken(ctx, subject, ttl)
}

func newTokenCmd(issuer tokenIssuer) *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an admin bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := issuer.Issue(cmd.Context(), subject, ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Operator identity stored in the token (required)")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
