package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebmuhia/farmmarket/internal/auth"
	"github.com/calebmuhia/farmmarket/pkg/types"
)

func TestSeed(t *testing.T) {
	b := setupStore(t)

	require.NoError(t, b.Seed("admin-password"))

	users, err := b.GetTable(types.UsersTable)
	require.NoError(t, err)
	results, err := users.Fetch(types.Filter{"username": DefaultAdminUsername})
	require.NoError(t, err)
	require.Len(t, results, 1)

	admin := results[0].(*types.User)
	assert.Equal(t, types.RoleAdmin, admin.Role)
	assert.True(t, auth.CheckPassword(admin.PasswordHash, "admin-password"))

	farmers, err := b.GetTable(types.FarmersTable)
	require.NoError(t, err)
	farmerRows, err := farmers.Fetch(nil)
	require.NoError(t, err)
	assert.Len(t, farmerRows, 2)

	products, err := b.GetTable(types.ProductsTable)
	require.NoError(t, err)
	productRows, err := products.Fetch(nil)
	require.NoError(t, err)
	assert.Len(t, productRows, 5)

	// Every seeded product is linked to a farmer.
	for _, row := range productRows {
		assert.NotNil(t, row.(*types.Product).FarmerID)
	}

	customers, err := b.GetTable(types.CustomersTable)
	require.NoError(t, err)
	customerRows, err := customers.Fetch(nil)
	require.NoError(t, err)
	assert.Len(t, customerRows, 1)
}

func TestSeedIdempotent(t *testing.T) {
	b := setupStore(t)

	require.NoError(t, b.Seed("admin-password"))
	require.NoError(t, b.Seed("other-password"))

	users, err := b.GetTable(types.UsersTable)
	require.NoError(t, err)
	results, err := users.Fetch(nil)
	require.NoError(t, err)
	assert.Len(t, results, 1)

	farmers, err := b.GetTable(types.FarmersTable)
	require.NoError(t, err)
	farmerRows, err := farmers.Fetch(nil)
	require.NoError(t, err)
	assert.Len(t, farmerRows, 2)
}

func TestSeedSkippedWhenUsersExist(t *testing.T) {
	b := setupStore(t)

	users, err := b.GetTable(types.UsersTable)
	require.NoError(t, err)
	_, err = users.Set(0, &types.User{Username: "existing", PasswordHash: "h"})
	require.NoError(t, err)

	require.NoError(t, b.Seed("admin-password"))

	farmers, err := b.GetTable(types.FarmersTable)
	require.NoError(t, err)
	farmerRows, err := farmers.Fetch(nil)
	require.NoError(t, err)
	assert.Empty(t, farmerRows)
}

func TestSeedClosedStore(t *testing.T) {
	b := setupStore(t)
	require.NoError(t, b.Close())

	assert.ErrorIs(t, b.Seed("admin-password"), types.ErrStoreClosed)
}
