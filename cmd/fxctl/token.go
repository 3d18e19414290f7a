package main

import (
	"fmt"

	"github.com/SscSPs/freight_desk/internal/utils"
	"github.com/spf13/cobra"
)

var tokenUserID string

// tokenCmd mints an API token for scripts and local testing.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for the API",
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := utils.GenerateJWT(tokenUserID, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)
		if err != nil {
			return fmt.Errorf("failed to sign token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUserID, "user", "", "user id placed in the token subject")
	_ = tokenCmd.MarkFlagRequired("user")
}
