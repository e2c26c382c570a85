// Seed command loads demo data into a fresh database.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebmuhia/farmmarket/internal/sqlite"
)

var seedAdminPassword string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo data into a fresh database",
	Long: `Seed creates a demo admin account, farmers, products, and one
customer. Seeding only runs when the users table is empty.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedAdminPassword, "admin-password", "", "password for the demo admin account (required)")
	_ = seedCmd.MarkFlagRequired("admin-password")
}

func runSeed(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Seed(seedAdminPassword); err != nil {
		return fmt.Errorf("seed demo data: %w", err)
	}
	fmt.Printf("Seeded demo data (admin account: %s)\n", sqlite.DefaultAdminUsername)
	return nil
}
