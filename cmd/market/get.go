// Generic get command retrieves one entity from any table by ID.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <table> <id>",
	Short: "Get an entity from a table by ID",
	Long: fmt.Sprintf(`Get retrieves a single entity by ID.

Valid tables: %s

Example:
  market get products 1
  market get users 2 --json`, validTableNamesStr),
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	tableName := args[0]
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid ID %q", args[1])
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	table, err := store.GetTable(tableName)
	if err != nil {
		return fmt.Errorf("table %q (valid: %s): %w", tableName, validTableNamesStr, err)
	}

	entity, err := table.Get(id)
	if err != nil {
		if isEntityNotFound(err) {
			return fmt.Errorf("%s %d: %w", tableName, id, err)
		}
		return err
	}
	return printEntity(entity)
}
