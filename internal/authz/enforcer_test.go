package authz_test

import (
	"testing"

	"staffdesk/internal/authz"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnforcer(t *testing.T) {
	enforcer, err := authz.NewEnforcer()
	require.NoError(t, err)

	t.Run("both roles hold every entity capability", func(t *testing.T) {
		for _, role := range []string{authz.RoleSuperAdmin, authz.RoleStaff} {
			for _, resource := range authz.EntityResources {
				for _, action := range []string{"create", "read", "update", "delete"} {
					allowed, err := enforcer.Authorize(role, resource, action)
					require.NoError(t, err)
					assert.True(t, allowed, "%s should %s %s", role, action, resource)
				}
			}
		}
	})

	t.Run("admin dashboard is super admin only", func(t *testing.T) {
		allowed, err := enforcer.Authorize(authz.RoleSuperAdmin, authz.ResourceAdminDashboard, "read")
		require.NoError(t, err)
		assert.True(t, allowed)

		allowed, err = enforcer.Authorize(authz.RoleStaff, authz.ResourceAdminDashboard, "read")
		require.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("employee dashboard is open to both roles", func(t *testing.T) {
		for _, role := range []string{authz.RoleSuperAdmin, authz.RoleStaff} {
			allowed, err := enforcer.Authorize(role, authz.ResourceEmployeeDashboard, "read")
			require.NoError(t, err)
			assert.True(t, allowed, role)
		}
	})

	t.Run("unknown role holds nothing", func(t *testing.T) {
		allowed, err := enforcer.Authorize("contractor", "employee", "read")
		require.NoError(t, err)
		assert.False(t, allowed)
	})
}
