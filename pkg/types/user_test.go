package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSetRole(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		wantErr error
	}{
		{name: "admin accepted", role: RoleAdmin},
		{name: "farmer accepted", role: RoleFarmer},
		{name: "customer accepted", role: RoleCustomer},
		{name: "unknown role rejected", role: "vendor", wantErr: ErrInvalidRole},
		{name: "empty role rejected", role: "", wantErr: ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{Username: "caleb", Role: RoleCustomer, UpdatedAt: time.Now().Add(-time.Hour)}

			err := u.SetRole(tt.role)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, RoleCustomer, u.Role)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.role, u.Role)
		})
	}
}

func TestUserPasswordHashNotSerialized(t *testing.T) {
	u := &User{ID: 1, Username: "caleb", PasswordHash: "$2a$10$secret", Role: RoleFarmer}

	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
	assert.Contains(t, string(data), "caleb")
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleAdmin, RoleFarmer, RoleCustomer} {
		assert.True(t, ValidRole(role), role)
	}
	assert.False(t, ValidRole("vendor"))
	assert.False(t, ValidRole(""))
}
