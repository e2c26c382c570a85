// Generic list command fetches entities from any table.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebmuhia/farmmarket/pkg/types"
)

var (
	listLimit  int
	listOffset int
)

var listCmd = &cobra.Command{
	Use:   "list <table>",
	Short: "List entities in a table",
	Long: fmt.Sprintf(`List fetches entities from a table, newest first.

Valid tables: %s

Example:
  market list products
  market list transactions --limit 10 --json`, validTableNamesStr),
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "maximum number of results")
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "number of results to skip")
}

func runList(cmd *cobra.Command, args []string) error {
	tableName := args[0]

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	table, err := store.GetTable(tableName)
	if err != nil {
		return fmt.Errorf("table %q (valid: %s): %w", tableName, validTableNamesStr, err)
	}

	filter := types.Filter{}
	if listLimit > 0 {
		filter["limit"] = listLimit
	}
	if listOffset > 0 {
		filter["offset"] = listOffset
	}

	results, err := table.Fetch(filter)
	if err != nil {
		return fmt.Errorf("list %s: %w", tableName, err)
	}
	return printEntities(results)
}
