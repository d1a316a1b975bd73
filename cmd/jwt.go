package main

import (
	"checkups/internal/config"
	"checkups/pkg/logger"
	"crypto/rsa"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// signToken issues an RS256 bearer token for the /search API.
func signToken(key *rsa.PrivateKey, subject string, ttl time.Duration, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	})

	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("could not sign token: %w", err)
	}

	return signed, nil
}

// JWTCommand constructs the 'jwt' subcommand that issues a bearer token for
// a search API client using the configured private key.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Issues a bearer token for a search API client",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			subject, _ := cmd.Flags().GetString("subject")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cfg.JWT.PrivateKey))
			if err != nil {
				logger.Fatal(ctx, "could not parse RSA private key", zap.Error(err))
			}

			signed, err := signToken(key, subject, ttl, time.Now())
			if err != nil {
				logger.Fatal(ctx, "could not issue token", zap.Error(err))
			}

			fmt.Fprintln(cmd.OutOrStdout(), signed) //nolint: errcheck
		},
	}

	cmd.Flags().String("subject", "", "Token subject, e.g. the name of the frontend or script using it")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
