package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_IsPrivileged(t *testing.T) {
	assert.False(t, RoleUser.IsPrivileged())
	assert.True(t, RoleAdmin.IsPrivileged())
	assert.True(t, RoleSuperAdmin.IsPrivileged())
	assert.False(t, Role(42).IsPrivileged())
}

func TestRole_Scan(t *testing.T) {
	var r Role
	require.NoError(t, r.Scan("SUPER_ADMIN"))
	assert.Equal(t, RoleSuperAdmin, r)

	require.NoError(t, r.Scan([]byte("ADMIN")))
	assert.Equal(t, RoleAdmin, r)

	assert.Error(t, r.Scan("ROOT"))
	assert.Error(t, r.Scan(1))
}

func TestPrincipal_CanManage(t *testing.T) {
	tests := []struct {
		name      string
		principal Principal
		ownerID   int
		want      bool
	}{
		{name: "owner", principal: Principal{UserID: 1, Role: RoleUser}, ownerID: 1, want: true},
		{name: "stranger", principal: Principal{UserID: 2, Role: RoleUser}, ownerID: 1, want: false},
		{name: "admin", principal: Principal{UserID: 2, Role: RoleAdmin}, ownerID: 1, want: true},
		{name: "super admin", principal: Principal{UserID: 2, Role: RoleSuperAdmin}, ownerID: 1, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.principal.CanManage(tt.ownerID))
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.ErrorIs(t, ValidatePassword("short"), ErrPasswordPolicyViolated)
	assert.NoError(t, ValidatePassword("long_enough_password"))
}
