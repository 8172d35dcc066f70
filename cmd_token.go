package main

import (
	"fmt"
	"time"

	"tripmarket/internal/domain"
	"tripmarket/internal/http/middleware"

	"github.com/spf13/cobra"
)

var (
	tokenUser  string
	tokenOrg   string
	tokenRole  string
	tokenName  string
	tokenEmail string
	tokenTTL   time.Duration
)

// tokenCmd signs a development token with JWT_SECRET.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Sign a bearer token for local testing",
	RunE: func(cmd *cobra.Command, args []string) error {
		if tokenUser == "" {
			return fmt.Errorf("--user is required")
		}
		token, err := middleware.SignToken(env.JWTSecret, domain.RequestContext{
			UserID:         tokenUser,
			OrganizationID: tokenOrg,
			Role:           tokenRole,
			Name:           tokenName,
			Email:          tokenEmail,
		}, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUser, "user", "", "user id")
	tokenCmd.Flags().StringVar(&tokenOrg, "org", "", "organization id")
	tokenCmd.Flags().StringVar(&tokenRole, "role", domain.RoleTraveller, "TRAVELLER, ORGANIZER or SUPERADMIN")
	tokenCmd.Flags().StringVar(&tokenName, "name", "", "display name")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "email")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
}
