// Transaction commands record and inspect purchases. The store persists
// total_price as supplied; when --total is omitted the CLI computes
// quantity times the product's listed price before inserting.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/calebmuhia/farmmarket/pkg/types"
	"github.com/calebmuhia/farmmarket/pkg/validate"
)

var (
	txnProductID    int64
	txnCustomerID   int64
	txnQuantity     int64
	txnTotal        float64
	txnListCustomer int64
	txnListProduct  int64
	txnListStatuses []string
	txnStatus       string
)

// transactionInput is the validated shape of a purchase request.
type transactionInput struct {
	ProductID  int64 `validate:"required,gt=0"`
	CustomerID int64 `validate:"required,gt=0"`
	Quantity   int64 `validate:"required,gt=0"`
}

var transactionCmd = &cobra.Command{
	Use:     "transaction",
	Aliases: []string{"txn"},
	Short:   "Record and inspect purchases",
}

var transactionAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a purchase",
	Long: `Add records a purchase of a product by a customer. When --total
is omitted the total is computed as quantity times the product's listed
price; an explicit --total is stored verbatim.

Example:
  market transaction add --product 1 --customer 2 --quantity 5
  market transaction add --product 1 --customer 2 --quantity 5 --total 1200`,
	RunE: runTransactionAdd,
}

var transactionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List purchases",
	RunE:  runTransactionList,
}

var transactionGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one purchase",
	Args:  cobra.ExactArgs(1),
	RunE:  runTransactionGet,
}

var transactionStatusCmd = &cobra.Command{
	Use:   "status <id>",
	Short: "Advance a purchase through its lifecycle",
	Long: `Status moves a purchase to the given status. Valid moves follow
pending -> paid -> shipped -> delivered; cancellation is allowed from any
non-terminal status.`,
	Args: cobra.ExactArgs(1),
	RunE: runTransactionStatus,
}

func init() {
	transactionAddCmd.Flags().Int64Var(&txnProductID, "product", 0, "product ID (required)")
	transactionAddCmd.Flags().Int64Var(&txnCustomerID, "customer", 0, "customer ID (required)")
	transactionAddCmd.Flags().Int64Var(&txnQuantity, "quantity", 0, "purchase quantity (required)")
	transactionAddCmd.Flags().Float64Var(&txnTotal, "total", 0, "total price (default: quantity x listed price)")
	_ = transactionAddCmd.MarkFlagRequired("product")
	_ = transactionAddCmd.MarkFlagRequired("customer")
	_ = transactionAddCmd.MarkFlagRequired("quantity")

	transactionListCmd.Flags().Int64Var(&txnListCustomer, "customer", 0, "filter by customer ID")
	transactionListCmd.Flags().Int64Var(&txnListProduct, "product", 0, "filter by product ID")
	transactionListCmd.Flags().StringSliceVar(&txnListStatuses, "status", nil, "filter by status (repeatable)")

	transactionStatusCmd.Flags().StringVar(&txnStatus, "to", "", "target status (required)")
	_ = transactionStatusCmd.MarkFlagRequired("to")

	transactionCmd.AddCommand(transactionAddCmd)
	transactionCmd.AddCommand(transactionListCmd)
	transactionCmd.AddCommand(transactionGetCmd)
	transactionCmd.AddCommand(transactionStatusCmd)
}

func runTransactionAdd(cmd *cobra.Command, args []string) error {
	input := transactionInput{
		ProductID:  txnProductID,
		CustomerID: txnCustomerID,
		Quantity:   txnQuantity,
	}
	if err := validate.Struct(input); err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	total := txnTotal
	if !cmd.Flags().Changed("total") {
		// Price the order from the current listing.
		productsTable, err := store.GetTable(types.ProductsTable)
		if err != nil {
			return fmt.Errorf("get products table: %w", err)
		}
		entity, err := productsTable.Get(input.ProductID)
		if err != nil {
			return fmt.Errorf("price product %d: %w", input.ProductID, err)
		}
		product := entity.(*types.Product)
		total = float64(input.Quantity) * product.Price
	}

	table, err := store.GetTable(types.TransactionsTable)
	if err != nil {
		return fmt.Errorf("get transactions table: %w", err)
	}

	txn := &types.Transaction{
		ProductID:  input.ProductID,
		CustomerID: input.CustomerID,
		Quantity:   input.Quantity,
		TotalPrice: total,
	}
	id, err := table.Set(0, txn)
	if err != nil {
		return fmt.Errorf("record purchase: %w", err)
	}

	entity, err := table.Get(id)
	if err != nil {
		fmt.Printf("Recorded purchase: %d\n", id)
		return nil
	}
	return printEntity(entity)
}

func runTransactionList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	table, err := store.GetTable(types.TransactionsTable)
	if err != nil {
		return fmt.Errorf("get transactions table: %w", err)
	}

	filter := types.Filter{}
	if txnListCustomer > 0 {
		filter["customer_id"] = txnListCustomer
	}
	if txnListProduct > 0 {
		filter["product_id"] = txnListProduct
	}
	if len(txnListStatuses) > 0 {
		filter["statuses"] = txnListStatuses
	}

	results, err := table.Fetch(filter)
	if err != nil {
		return fmt.Errorf("list purchases: %w", err)
	}
	return printEntities(results)
}

func runTransactionGet(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid transaction ID %q", args[0])
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	table, err := store.GetTable(types.TransactionsTable)
	if err != nil {
		return fmt.Errorf("get transactions table: %w", err)
	}

	entity, err := table.Get(id)
	if err != nil {
		if isEntityNotFound(err) {
			return fmt.Errorf("transaction %d: %w", id, err)
		}
		return err
	}
	return printEntity(entity)
}

func runTransactionStatus(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid transaction ID %q", args[0])
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	table, err := store.GetTable(types.TransactionsTable)
	if err != nil {
		return fmt.Errorf("get transactions table: %w", err)
	}

	entity, err := table.Get(id)
	if err != nil {
		return fmt.Errorf("transaction %d: %w", id, err)
	}
	txn := entity.(*types.Transaction)

	if err := txn.SetStatus(txnStatus); err != nil {
		return fmt.Errorf("move transaction %d to %q: %w", id, txnStatus, err)
	}
	if _, err := table.Set(id, txn); err != nil {
		return fmt.Errorf("persist transaction %d: %w", id, err)
	}
	return printEntity(txn)
}
