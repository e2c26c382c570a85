// Generic delete command removes one entity from any table by ID.
// Requires an admin session: deletion is not part of the normal
// marketplace flow and referenced rows are protected by RESTRICT.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/calebmuhia/farmmarket/pkg/types"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <table> <id>",
	Short: "Delete an entity from a table by ID",
	Long: fmt.Sprintf(`Delete removes a single entity by ID. Requires an
admin session. Deleting a farmer, product, or customer that other rows
still reference fails.

Valid tables: %s`, validTableNamesStr),
	Args: cobra.ExactArgs(2),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	if _, err := requireRole(types.RoleAdmin); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

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

	if err := table.Delete(id); err != nil {
		return fmt.Errorf("delete %s %d: %w", tableName, id, err)
	}
	fmt.Printf("Deleted %s %d\n", tableName, id)
	return nil
}
