// Customer commands manage buyer profiles.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebmuhia/farmmarket/pkg/types"
	"github.com/calebmuhia/farmmarket/pkg/validate"
)

var (
	customerName  string
	customerEmail string
)

// customerInput is the validated shape of a customer profile.
type customerInput struct {
	Name  string `validate:"required,max=100"`
	Email string `validate:"omitempty,email"`
}

var customerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Manage customer profiles",
}

var customerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new customer profile",
	Long: `Add creates a new customer profile. Email is optional but must
be unique across customers when provided.

Example:
  market customer add --name "Akinyi Otieno" --email akinyi@example.com`,
	RunE: runCustomerAdd,
}

var customerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List customer profiles",
	RunE:  runCustomerList,
}

func init() {
	customerAddCmd.Flags().StringVar(&customerName, "name", "", "customer name (required)")
	customerAddCmd.Flags().StringVar(&customerEmail, "email", "", "customer email (unique when present)")
	_ = customerAddCmd.MarkFlagRequired("name")

	customerCmd.AddCommand(customerAddCmd)
	customerCmd.AddCommand(customerListCmd)
}

func runCustomerAdd(cmd *cobra.Command, args []string) error {
	input := customerInput{Name: customerName, Email: customerEmail}
	if err := validate.Struct(input); err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	table, err := store.GetTable(types.CustomersTable)
	if err != nil {
		return fmt.Errorf("get customers table: %w", err)
	}

	customer := &types.Customer{Name: input.Name}
	if input.Email != "" {
		customer.Email = &input.Email
	}

	id, err := table.Set(0, customer)
	if err != nil {
		return fmt.Errorf("create customer: %w", err)
	}

	entity, err := table.Get(id)
	if err != nil {
		fmt.Printf("Created customer: %d\n", id)
		return nil
	}
	return printEntity(entity)
}

func runCustomerList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	table, err := store.GetTable(types.CustomersTable)
	if err != nil {
		return fmt.Errorf("get customers table: %w", err)
	}

	results, err := table.Fetch(nil)
	if err != nil {
		return fmt.Errorf("list customers: %w", err)
	}
	return printEntities(results)
}
