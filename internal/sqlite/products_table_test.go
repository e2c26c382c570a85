package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebmuhia/farmmarket/pkg/types"
)

func TestProductsTableRoundTrip(t *testing.T) {
	b := setupStore(t)
	farmerID := mustCreateFarmer(t, b, "Caleb", "Nairobi")

	table, err := b.GetTable(types.ProductsTable)
	require.NoError(t, err)

	id, err := table.Set(0, &types.Product{
		Name:        "Eggs",
		Description: "Tray of 30",
		Price:       250.0,
		ImageURL:    "https://example.com/eggs.jpg",
		FarmerID:    &farmerID,
	})
	require.NoError(t, err)

	got, err := table.Get(id)
	require.NoError(t, err)
	product, ok := got.(*types.Product)
	require.True(t, ok)
	assert.Equal(t, "Eggs", product.Name)
	assert.Equal(t, "Tray of 30", product.Description)
	assert.Equal(t, 250.0, product.Price)
	assert.Equal(t, "https://example.com/eggs.jpg", product.ImageURL)
	require.NotNil(t, product.FarmerID)
	assert.Equal(t, farmerID, *product.FarmerID)
}

func TestProductsTableNilFarmer(t *testing.T) {
	b := setupStore(t)
	table, err := b.GetTable(types.ProductsTable)
	require.NoError(t, err)

	// The farmer link is optional.
	id, err := table.Set(0, &types.Product{Name: "Honey", Price: 800.0})
	require.NoError(t, err)

	got, err := table.Get(id)
	require.NoError(t, err)
	assert.Nil(t, got.(*types.Product).FarmerID)
}

func TestProductsTableDanglingFarmer(t *testing.T) {
	b := setupStore(t)
	table, err := b.GetTable(types.ProductsTable)
	require.NoError(t, err)

	missing := int64(9999)
	_, err = table.Set(0, &types.Product{Name: "Eggs", Price: 250.0, FarmerID: &missing})
	assert.ErrorIs(t, err, types.ErrReferential)
}

func TestProductsTableNegativePrice(t *testing.T) {
	b := setupStore(t)
	table, err := b.GetTable(types.ProductsTable)
	require.NoError(t, err)

	_, err = table.Set(0, &types.Product{Name: "Eggs", Price: -1.0})
	assert.ErrorIs(t, err, types.ErrConstraint)
}

func TestProductsTableSetValidation(t *testing.T) {
	b := setupStore(t)
	table, err := b.GetTable(types.ProductsTable)
	require.NoError(t, err)

	_, err = table.Set(0, &types.Product{Price: 10.0})
	assert.ErrorIs(t, err, types.ErrInvalidName)

	_, err = table.Set(0, &types.User{Username: "wrong type"})
	assert.ErrorIs(t, err, types.ErrInvalidData)
}

func TestProductsTableDeleteRestrictedByTransactions(t *testing.T) {
	b := setupStore(t)
	productID := mustCreateProduct(t, b, "Eggs", 250.0, nil)
	customerID := mustCreateCustomer(t, b, "Akinyi", nil)

	txns, err := b.GetTable(types.TransactionsTable)
	require.NoError(t, err)
	_, err = txns.Set(0, &types.Transaction{
		ProductID:  productID,
		CustomerID: customerID,
		Quantity:   2,
		TotalPrice: 500.0,
	})
	require.NoError(t, err)

	products, err := b.GetTable(types.ProductsTable)
	require.NoError(t, err)
	assert.ErrorIs(t, products.Delete(productID), types.ErrReferential)
}

func TestProductsTableFetch(t *testing.T) {
	b := setupStore(t)
	farmerID := mustCreateFarmer(t, b, "Caleb", "Nairobi")
	otherID := mustCreateFarmer(t, b, "Wanjiku", "Nyeri")

	mustCreateProduct(t, b, "Eggs", 250.0, &farmerID)
	mustCreateProduct(t, b, "Milk", 65.0, &farmerID)
	mustCreateProduct(t, b, "Tomatoes", 120.0, &otherID)
	mustCreateProduct(t, b, "Honey", 800.0, nil)

	table, err := b.GetTable(types.ProductsTable)
	require.NoError(t, err)

	t.Run("all newest first", func(t *testing.T) {
		results, err := table.Fetch(nil)
		require.NoError(t, err)
		require.Len(t, results, 4)
		assert.Equal(t, "Honey", results[0].(*types.Product).Name)
	})

	t.Run("filter by farmer", func(t *testing.T) {
		results, err := table.Fetch(types.Filter{"farmer_id": farmerID})
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("filter by max price", func(t *testing.T) {
		results, err := table.Fetch(types.Filter{"max_price": 150.0})
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("combined filters", func(t *testing.T) {
		results, err := table.Fetch(types.Filter{"farmer_id": farmerID, "max_price": 100.0})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Milk", results[0].(*types.Product).Name)
	})

	t.Run("invalid farmer filter", func(t *testing.T) {
		_, err := table.Fetch(types.Filter{"farmer_id": "one"})
		assert.ErrorIs(t, err, types.ErrInvalidFilter)
	})
}
