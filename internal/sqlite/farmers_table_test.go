package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebmuhia/farmmarket/pkg/types"
)

func TestFarmersTableRoundTrip(t *testing.T) {
	b := setupStore(t)
	table, err := b.GetTable(types.FarmersTable)
	require.NoError(t, err)

	id, err := table.Set(0, &types.Farmer{Name: "Caleb", Location: "Nairobi"})
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := table.Get(id)
	require.NoError(t, err)
	farmer, ok := got.(*types.Farmer)
	require.True(t, ok)
	assert.Equal(t, "Caleb", farmer.Name)
	assert.Equal(t, "Nairobi", farmer.Location)
}

func TestFarmersTableEmptyLocation(t *testing.T) {
	b := setupStore(t)
	table, err := b.GetTable(types.FarmersTable)
	require.NoError(t, err)

	id, err := table.Set(0, &types.Farmer{Name: "No Fixed Abode"})
	require.NoError(t, err)

	got, err := table.Get(id)
	require.NoError(t, err)
	assert.Empty(t, got.(*types.Farmer).Location)
}

func TestFarmersTableSetValidation(t *testing.T) {
	b := setupStore(t)
	table, err := b.GetTable(types.FarmersTable)
	require.NoError(t, err)

	_, err = table.Set(0, &types.Farmer{Location: "Nairobi"})
	assert.ErrorIs(t, err, types.ErrInvalidName)

	_, err = table.Set(0, "not a farmer")
	assert.ErrorIs(t, err, types.ErrInvalidData)
}

func TestFarmersTableUpdate(t *testing.T) {
	b := setupStore(t)
	table, err := b.GetTable(types.FarmersTable)
	require.NoError(t, err)

	id, err := table.Set(0, &types.Farmer{Name: "Caleb", Location: "Nairobi"})
	require.NoError(t, err)

	_, err = table.Set(id, &types.Farmer{Name: "Caleb", Location: "Nakuru"})
	require.NoError(t, err)

	got, err := table.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Nakuru", got.(*types.Farmer).Location)
}

func TestFarmersTableDeleteRestrictedByProducts(t *testing.T) {
	b := setupStore(t)
	farmerID := mustCreateFarmer(t, b, "Caleb", "Nairobi")
	mustCreateProduct(t, b, "Eggs", 250.0, &farmerID)

	table, err := b.GetTable(types.FarmersTable)
	require.NoError(t, err)

	// A farmer with listed products cannot be removed.
	assert.ErrorIs(t, table.Delete(farmerID), types.ErrReferential)

	// Still present.
	_, err = table.Get(farmerID)
	assert.NoError(t, err)
}

func TestFarmersTableFetch(t *testing.T) {
	b := setupStore(t)
	table, err := b.GetTable(types.FarmersTable)
	require.NoError(t, err)

	mustCreateFarmer(t, b, "Wanjiku Farms", "Nyeri")
	mustCreateFarmer(t, b, "Kiprono Dairy", "Eldoret")
	mustCreateFarmer(t, b, "Nyeri Greens", "Nyeri")

	t.Run("all newest first", func(t *testing.T) {
		results, err := table.Fetch(nil)
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "Nyeri Greens", results[0].(*types.Farmer).Name)
	})

	t.Run("filter by location", func(t *testing.T) {
		results, err := table.Fetch(types.Filter{"location": "Nyeri"})
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("invalid location filter", func(t *testing.T) {
		_, err := table.Fetch(types.Filter{"location": 7})
		assert.ErrorIs(t, err, types.ErrInvalidFilter)
	})
}
