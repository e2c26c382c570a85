// Init command creates the config and data directories and applies the
// database schema.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the market storage",
	Long:  `Init creates the configuration and data directories and the market database with its schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}
		fmt.Printf("Market initialized in %s\n", dataDir)
		return nil
	},
}
