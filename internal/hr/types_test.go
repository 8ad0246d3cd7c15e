package hr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleIn(t *testing.T) {
	assert.True(t, RoleHR.In(RoleHR, RoleAdmin))
	assert.False(t, RoleEmployee.In(RoleHR, RoleAdmin))
	assert.False(t, RoleAdmin.In())
}

func TestRoleValid(t *testing.T) {
	for _, r := range Roles() {
		assert.True(t, r.Valid(), string(r))
	}
	assert.False(t, Role("manager").Valid())
	assert.False(t, Role("").Valid())
}

func TestFullName(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"Asha", "Rao", "Asha Rao"},
		{"", "Rao", "Rao"},
		{"Asha", "", "Asha"},
	}
	for _, tt := range tests {
		u := User{FirstName: tt.first, LastName: tt.last}
		assert.Equal(t, tt.want, u.FullName())
	}
}

func TestUserJSONFieldNames(t *testing.T) {
	// The backend contract uses snake_case; a drift here breaks session
	// restore silently, so pin the names that matter.
	u := User{
		ID:           "u1",
		Username:     "demoadmin",
		Role:         RoleAdmin,
		IsSuperAdmin: true,
		Status:       UserActive,
	}
	data, err := json.Marshal(u)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "is_super_admin")
	assert.Contains(t, raw, "email_verified")
	assert.Equal(t, "admin", raw["role"])
}
