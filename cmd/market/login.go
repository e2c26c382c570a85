// Login, logout, and whoami commands manage the CLI session. A session
// is a signed token stored in the config directory; login-gated commands
// (listing a product as a farmer, buying as a customer) read it back.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/calebmuhia/farmmarket/internal/auth"
	"github.com/calebmuhia/farmmarket/pkg/types"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to your account",
	RunE:  runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&loginUsername, "username", "", "account username (required)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password (required)")
	_ = loginCmd.MarkFlagRequired("username")
	_ = loginCmd.MarkFlagRequired("password")
}

func runLogin(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	table, err := store.GetTable(types.UsersTable)
	if err != nil {
		return fmt.Errorf("get users table: %w", err)
	}

	// Username lookup and password check collapse into one error so the
	// CLI never reveals which of the two was wrong.
	results, err := table.Fetch(types.Filter{"username": loginUsername})
	if err != nil {
		return fmt.Errorf("look up account: %w", err)
	}
	if len(results) == 0 {
		return fmt.Errorf("invalid username or password")
	}
	user := results[0].(*types.User)
	if !auth.CheckPassword(user.PasswordHash, loginPassword) {
		return fmt.Errorf("invalid username or password")
	}

	ttl := time.Duration(configSessionTTL) * time.Hour
	token, err := auth.GenerateToken([]byte(configAuthSecret), user.ID, user.Username, user.Role, ttl)
	if err != nil {
		return fmt.Errorf("generate session token: %w", err)
	}

	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	if err := auth.SaveSession(configDir, token); err != nil {
		return err
	}

	fmt.Printf("Logged in as %s (%s)\n", user.Username, user.Role)
	return nil
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		if err := auth.ClearSession(configDir); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the currently logged-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		claims, err := currentClaims()
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s)\n", claims.Username, claims.Role)
		return nil
	},
}
