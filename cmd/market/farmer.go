// Farmer commands manage seller profiles.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/calebmuhia/farmmarket/pkg/types"
	"github.com/calebmuhia/farmmarket/pkg/validate"
)

var (
	farmerName     string
	farmerLocation string
	farmerListLoc  string
)

// farmerInput is the validated shape of a farmer profile.
type farmerInput struct {
	Name     string `validate:"required,max=100"`
	Location string `validate:"max=100"`
}

var farmerCmd = &cobra.Command{
	Use:   "farmer",
	Short: "Manage farmer profiles",
}

var farmerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new farmer profile",
	Long: `Add creates a new farmer profile.

Example:
  market farmer add --name "Caleb" --location "Nairobi"`,
	RunE: runFarmerAdd,
}

var farmerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List farmer profiles",
	RunE:  runFarmerList,
}

var farmerGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one farmer profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runFarmerGet,
}

func init() {
	farmerAddCmd.Flags().StringVar(&farmerName, "name", "", "farmer name (required)")
	farmerAddCmd.Flags().StringVar(&farmerLocation, "location", "", "farmer location")
	_ = farmerAddCmd.MarkFlagRequired("name")

	farmerListCmd.Flags().StringVar(&farmerListLoc, "location", "", "filter by location")

	farmerCmd.AddCommand(farmerAddCmd)
	farmerCmd.AddCommand(farmerListCmd)
	farmerCmd.AddCommand(farmerGetCmd)
}

func runFarmerAdd(cmd *cobra.Command, args []string) error {
	input := farmerInput{Name: farmerName, Location: farmerLocation}
	if err := validate.Struct(input); err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	table, err := store.GetTable(types.FarmersTable)
	if err != nil {
		return fmt.Errorf("get farmers table: %w", err)
	}

	farmer := &types.Farmer{Name: input.Name, Location: input.Location}
	id, err := table.Set(0, farmer)
	if err != nil {
		return fmt.Errorf("create farmer: %w", err)
	}

	entity, err := table.Get(id)
	if err != nil {
		fmt.Printf("Created farmer: %d\n", id)
		return nil
	}
	return printEntity(entity)
}

func runFarmerList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	table, err := store.GetTable(types.FarmersTable)
	if err != nil {
		return fmt.Errorf("get farmers table: %w", err)
	}

	filter := types.Filter{}
	if farmerListLoc != "" {
		filter["location"] = farmerListLoc
	}

	results, err := table.Fetch(filter)
	if err != nil {
		return fmt.Errorf("list farmers: %w", err)
	}
	return printEntities(results)
}

func runFarmerGet(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid farmer ID %q", args[0])
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	table, err := store.GetTable(types.FarmersTable)
	if err != nil {
		return fmt.Errorf("get farmers table: %w", err)
	}

	entity, err := table.Get(id)
	if err != nil {
		if isEntityNotFound(err) {
			return fmt.Errorf("farmer %d: %w", id, err)
		}
		return err
	}
	return printEntity(entity)
}
