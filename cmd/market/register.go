// Register command creates a new marketplace account.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebmuhia/farmmarket/internal/auth"
	"github.com/calebmuhia/farmmarket/pkg/types"
	"github.com/calebmuhia/farmmarket/pkg/validate"
)

var (
	registerUsername string
	registerPassword string
	registerRole     string
)

// registerInput is the validated shape of a registration request.
type registerInput struct {
	Username string `validate:"required,min=3,max=64"`
	Password string `validate:"required,min=8"`
	Role     string `validate:"required,oneof=admin farmer customer"`
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new account",
	Long: `Register creates a new marketplace account with the given role.

Example:
  market register --username caleb --password hunter2secret --role farmer
  market register --username akinyi --password hunter2secret`,
	RunE: runRegister,
}

func init() {
	registerCmd.Flags().StringVar(&registerUsername, "username", "", "account username (required)")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "account password (required)")
	registerCmd.Flags().StringVar(&registerRole, "role", types.RoleCustomer, "account role: admin, farmer, or customer")
	_ = registerCmd.MarkFlagRequired("username")
	_ = registerCmd.MarkFlagRequired("password")
}

func runRegister(cmd *cobra.Command, args []string) error {
	input := registerInput{
		Username: registerUsername,
		Password: registerPassword,
		Role:     registerRole,
	}
	if err := validate.Struct(input); err != nil {
		return err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	table, err := store.GetTable(types.UsersTable)
	if err != nil {
		return fmt.Errorf("get users table: %w", err)
	}

	user := &types.User{
		Username:     input.Username,
		PasswordHash: hash,
		Role:         input.Role,
	}
	id, err := table.Set(0, user)
	if err != nil {
		return fmt.Errorf("create account: %w", err)
	}

	entity, err := table.Get(id)
	if err != nil {
		fmt.Printf("Created account: %d\n", id)
		return nil
	}
	return printEntity(entity)
}
