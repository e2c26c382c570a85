package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebmuhia/farmmarket/pkg/types"
)

func TestUsersTableRoundTrip(t *testing.T) {
	b := setupStore(t)
	table, err := b.GetTable(types.UsersTable)
	require.NoError(t, err)

	id, err := table.Set(0, &types.User{
		Username:     "caleb",
		PasswordHash: "$2a$10$hash",
		Role:         types.RoleFarmer,
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := table.Get(id)
	require.NoError(t, err)
	user, ok := got.(*types.User)
	require.True(t, ok)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "caleb", user.Username)
	assert.Equal(t, "$2a$10$hash", user.PasswordHash)
	assert.Equal(t, types.RoleFarmer, user.Role)
	assert.False(t, user.CreatedAt.IsZero())
	assert.False(t, user.UpdatedAt.IsZero())
}

func TestUsersTableAutoIncrementIDs(t *testing.T) {
	b := setupStore(t)
	table, err := b.GetTable(types.UsersTable)
	require.NoError(t, err)

	first, err := table.Set(0, &types.User{Username: "first", PasswordHash: "h"})
	require.NoError(t, err)
	second, err := table.Set(0, &types.User{Username: "second", PasswordHash: "h"})
	require.NoError(t, err)

	assert.Greater(t, second, first)
}

func TestUsersTableDefaultsRoleToCustomer(t *testing.T) {
	b := setupStore(t)
	table, err := b.GetTable(types.UsersTable)
	require.NoError(t, err)

	id, err := table.Set(0, &types.User{Username: "caleb", PasswordHash: "h"})
	require.NoError(t, err)

	got, err := table.Get(id)
	require.NoError(t, err)
	assert.Equal(t, types.RoleCustomer, got.(*types.User).Role)
}

func TestUsersTableDuplicateUsername(t *testing.T) {
	b := setupStore(t)
	table, err := b.GetTable(types.UsersTable)
	require.NoError(t, err)

	_, err = table.Set(0, &types.User{Username: "caleb", PasswordHash: "h"})
	require.NoError(t, err)

	_, err = table.Set(0, &types.User{Username: "caleb", PasswordHash: "h"})
	assert.ErrorIs(t, err, types.ErrConstraint)
}

func TestUsersTableInvalidRole(t *testing.T) {
	b := setupStore(t)
	table, err := b.GetTable(types.UsersTable)
	require.NoError(t, err)

	_, err = table.Set(0, &types.User{Username: "caleb", PasswordHash: "h", Role: "vendor"})
	assert.ErrorIs(t, err, types.ErrConstraint)
}

func TestUsersTableSetValidation(t *testing.T) {
	b := setupStore(t)
	table, err := b.GetTable(types.UsersTable)
	require.NoError(t, err)

	_, err = table.Set(0, &types.User{PasswordHash: "h"})
	assert.ErrorIs(t, err, types.ErrInvalidName)

	_, err = table.Set(0, &types.Farmer{Name: "wrong type"})
	assert.ErrorIs(t, err, types.ErrInvalidData)
}

func TestUsersTableUpdate(t *testing.T) {
	b := setupStore(t)
	table, err := b.GetTable(types.UsersTable)
	require.NoError(t, err)

	id, err := table.Set(0, &types.User{Username: "caleb", PasswordHash: "h"})
	require.NoError(t, err)

	updated, err := table.Set(id, &types.User{Username: "caleb", PasswordHash: "h2", Role: types.RoleFarmer})
	require.NoError(t, err)
	assert.Equal(t, id, updated)

	got, err := table.Get(id)
	require.NoError(t, err)
	user := got.(*types.User)
	assert.Equal(t, "h2", user.PasswordHash)
	assert.Equal(t, types.RoleFarmer, user.Role)

	// Updating a missing row reports not found.
	_, err = table.Set(9999, &types.User{Username: "ghost", PasswordHash: "h"})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestUsersTableGetErrors(t *testing.T) {
	b := setupStore(t)
	table, err := b.GetTable(types.UsersTable)
	require.NoError(t, err)

	_, err = table.Get(0)
	assert.ErrorIs(t, err, types.ErrInvalidID)

	_, err = table.Get(-1)
	assert.ErrorIs(t, err, types.ErrInvalidID)

	_, err = table.Get(9999)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestUsersTableDelete(t *testing.T) {
	b := setupStore(t)
	table, err := b.GetTable(types.UsersTable)
	require.NoError(t, err)

	id, err := table.Set(0, &types.User{Username: "caleb", PasswordHash: "h"})
	require.NoError(t, err)

	require.NoError(t, table.Delete(id))

	_, err = table.Get(id)
	assert.ErrorIs(t, err, types.ErrNotFound)

	assert.ErrorIs(t, table.Delete(id), types.ErrNotFound)
	assert.ErrorIs(t, table.Delete(0), types.ErrInvalidID)
}

func TestUsersTableFetch(t *testing.T) {
	b := setupStore(t)
	table, err := b.GetTable(types.UsersTable)
	require.NoError(t, err)

	for _, u := range []types.User{
		{Username: "admin-1", PasswordHash: "h", Role: types.RoleAdmin},
		{Username: "farmer-1", PasswordHash: "h", Role: types.RoleFarmer},
		{Username: "customer-1", PasswordHash: "h", Role: types.RoleCustomer},
		{Username: "customer-2", PasswordHash: "h", Role: types.RoleCustomer},
	} {
		user := u
		_, err := table.Set(0, &user)
		require.NoError(t, err)
	}

	t.Run("all users newest first", func(t *testing.T) {
		results, err := table.Fetch(nil)
		require.NoError(t, err)
		require.Len(t, results, 4)
		assert.Equal(t, "customer-2", results[0].(*types.User).Username)
		assert.Equal(t, "admin-1", results[3].(*types.User).Username)
	})

	t.Run("filter by role", func(t *testing.T) {
		results, err := table.Fetch(types.Filter{"role": types.RoleCustomer})
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("filter by roles list", func(t *testing.T) {
		results, err := table.Fetch(types.Filter{"roles": []string{types.RoleAdmin, types.RoleFarmer}})
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("filter by username", func(t *testing.T) {
		results, err := table.Fetch(types.Filter{"username": "farmer-1"})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, types.RoleFarmer, results[0].(*types.User).Role)
	})

	t.Run("limit and offset", func(t *testing.T) {
		results, err := table.Fetch(types.Filter{"limit": 2, "offset": 1})
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "customer-1", results[0].(*types.User).Username)
	})

	t.Run("invalid filter type", func(t *testing.T) {
		_, err := table.Fetch(types.Filter{"role": 42})
		assert.ErrorIs(t, err, types.ErrInvalidFilter)
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		results, err := table.Fetch(types.Filter{"username": "nobody"})
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}
