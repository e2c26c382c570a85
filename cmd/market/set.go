// Generic set command creates or updates an entity from raw JSON.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var setID int64

var setCmd = &cobra.Command{
	Use:   "set <table> <json>",
	Short: "Create or update an entity from JSON",
	Long: fmt.Sprintf(`Set creates a new entity (or updates one with --id)
from a JSON document.

Valid tables: %s

Example:
  market set farmers '{"name": "Caleb", "location": "Nairobi"}'
  market set products '{"name": "Eggs", "price": 250.0, "farmer_id": 1}' --id 3`, validTableNamesStr),
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func init() {
	setCmd.Flags().Int64Var(&setID, "id", 0, "entity ID to update (0 creates)")
}

func runSet(cmd *cobra.Command, args []string) error {
	tableName := args[0]

	entity, err := parseEntityJSON(tableName, []byte(args[1]))
	if err != nil {
		return fmt.Errorf("parse %s JSON: %w", tableName, err)
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

	id, err := table.Set(setID, entity)
	if err != nil {
		return fmt.Errorf("set %s: %w", tableName, err)
	}

	saved, err := table.Get(id)
	if err != nil {
		fmt.Println("Saved:", strconv.FormatInt(id, 10))
		return nil
	}
	return printEntity(saved)
}
