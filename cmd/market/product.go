// Product commands manage listings. Adding a product requires a
// logged-in farmer or admin session.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/calebmuhia/farmmarket/pkg/types"
	"github.com/calebmuhia/farmmarket/pkg/validate"
)

var (
	productName        string
	productDescription string
	productPrice       float64
	productImageURL    string
	productFarmerID    int64
	productListFarmer  int64
	productMaxPrice    float64
)

// productInput is the validated shape of a product listing.
type productInput struct {
	Name        string  `validate:"required,max=150"`
	Description string  `validate:"max=2000"`
	Price       float64 `validate:"gte=0"`
	ImageURL    string  `validate:"omitempty,url"`
}

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage product listings",
}

var productAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new product listing",
	Long: `Add creates a new product listing. Requires a logged-in farmer
or admin session.

Example:
  market product add --name "Eggs" --price 250.0 --farmer 1
  market product add --name "Milk" --price 65 --description "Per litre"`,
	RunE: runProductAdd,
}

var productListCmd = &cobra.Command{
	Use:   "list",
	Short: "Browse product listings",
	RunE:  runProductList,
}

var productGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one product listing",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductGet,
}

func init() {
	productAddCmd.Flags().StringVar(&productName, "name", "", "product name (required)")
	productAddCmd.Flags().StringVar(&productDescription, "description", "", "product description")
	productAddCmd.Flags().Float64Var(&productPrice, "price", 0, "product price (required)")
	productAddCmd.Flags().StringVar(&productImageURL, "image", "", "product photo URL")
	productAddCmd.Flags().Int64Var(&productFarmerID, "farmer", 0, "owning farmer ID (0 for unattributed)")
	_ = productAddCmd.MarkFlagRequired("name")
	_ = productAddCmd.MarkFlagRequired("price")

	productListCmd.Flags().Int64Var(&productListFarmer, "farmer", 0, "filter by farmer ID")
	productListCmd.Flags().Float64Var(&productMaxPrice, "max-price", 0, "filter by maximum price")

	productCmd.AddCommand(productAddCmd)
	productCmd.AddCommand(productListCmd)
	productCmd.AddCommand(productGetCmd)
}

func runProductAdd(cmd *cobra.Command, args []string) error {
	if _, err := requireRole(types.RoleFarmer); err != nil {
		return fmt.Errorf("product add: %w", err)
	}

	input := productInput{
		Name:        productName,
		Description: productDescription,
		Price:       productPrice,
		ImageURL:    productImageURL,
	}
	if err := validate.Struct(input); err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	table, err := store.GetTable(types.ProductsTable)
	if err != nil {
		return fmt.Errorf("get products table: %w", err)
	}

	product := &types.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
	}
	if productFarmerID > 0 {
		product.FarmerID = &productFarmerID
	}

	id, err := table.Set(0, product)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}

	entity, err := table.Get(id)
	if err != nil {
		fmt.Printf("Created product: %d\n", id)
		return nil
	}
	return printEntity(entity)
}

func runProductList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	table, err := store.GetTable(types.ProductsTable)
	if err != nil {
		return fmt.Errorf("get products table: %w", err)
	}

	filter := types.Filter{}
	if productListFarmer > 0 {
		filter["farmer_id"] = productListFarmer
	}
	if productMaxPrice > 0 {
		filter["max_price"] = productMaxPrice
	}

	results, err := table.Fetch(filter)
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}
	return printEntities(results)
}

func runProductGet(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid product ID %q", args[0])
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	table, err := store.GetTable(types.ProductsTable)
	if err != nil {
		return fmt.Errorf("get products table: %w", err)
	}

	entity, err := table.Get(id)
	if err != nil {
		if isEntityNotFound(err) {
			return fmt.Errorf("product %d: %w", id, err)
		}
		return err
	}
	return printEntity(entity)
}
