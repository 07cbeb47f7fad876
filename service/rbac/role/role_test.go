package role

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citrusworks/shopadmin/service/rbac/right"
)

func TestBootstrapRoles(t *testing.T) {
	t.Parallel()

	roles := BootstrapRoles()
	require.Len(t, roles, 2)

	byName := map[string]BootstrapRole{}
	for _, r := range roles {
		byName[r.Name] = r
	}
	admin, ok := byName[Admin]
	require.True(t, ok)
	sales, ok := byName[Salesperson]
	require.True(t, ok)

	for _, k := range right.List() {
		assert.True(t, admin.Includes(k), k)
		assert.Equal(t, !k.IsDestructive(), sales.Includes(k), k)
	}
}
