package main

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"time"
	"tracker/internal/api/handler/v1handler"
	"tracker/internal/config"
	"tracker/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// jwtCommand groups helpers for the RS256 bearer tokens accepted by the API.
func jwtCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Manages API bearer tokens",
	}

	cmd.AddCommand(jwtSignCommand(cfg), jwtKeygenCommand())

	return cmd
}

func jwtSignCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "sign",
		Short:        "Signs a token for an API client",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			subject, _ := cmd.Flags().GetString("subject")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			if cfg.JWT.PrivateKey == "" {
				return errors.New("jwt private key is not configured")
			}
			key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cfg.JWT.PrivateKey))
			if err != nil {
				return fmt.Errorf("could not parse RSA private key: %w", err)
			}

			now := time.Now()
			signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
				Subject:   subject,
				IssuedAt:  jwt.NewNumericDate(now),
				NotBefore: jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			}).SignedString(key)
			if err != nil {
				return fmt.Errorf("could not sign token: %w", err)
			}

			// catch a key pair mismatch before the token is handed out
			if cfg.JWT.PublicKey != "" {
				sec, err := v1handler.NewSecHandler(v1handler.NewSecHandlerOptions(cfg))
				if err != nil {
					return fmt.Errorf("could not load public key: %w", err)
				}
				if _, err := sec.HandleBearerAuth(ctx, signed); err != nil {
					logger.Warn(ctx, "configured public key rejects the signed token", zap.Error(err))
				}
			}

			fmt.Println(signed) //nolint: forbidigo

			return nil
		},
	}

	cmd.Flags().String("subject", "", "Token subject, usually the API client ID")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token lifetime (e.g., 15m, 24h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

func jwtKeygenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "keygen",
		Short:        "Prints a new PEM encoded RSA key pair",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			bits, _ := cmd.Flags().GetInt("bits")

			key, err := rsa.GenerateKey(rand.Reader, bits)
			if err != nil {
				return fmt.Errorf("could not generate key: %w", err)
			}
			priv, err := x509.MarshalPKCS8PrivateKey(key)
			if err != nil {
				return fmt.Errorf("could not encode private key: %w", err)
			}
			pub, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
			if err != nil {
				return fmt.Errorf("could not encode public key: %w", err)
			}

			if err := pem.Encode(os.Stdout, &pem.Block{Type: "PRIVATE KEY", Bytes: priv}); err != nil {
				return err //nolint: wrapcheck
			}

			return pem.Encode(os.Stdout, &pem.Block{Type: "PUBLIC KEY", Bytes: pub}) //nolint: wrapcheck
		},
	}

	cmd.Flags().Int("bits", 2048, "RSA key size")

	return cmd
}
