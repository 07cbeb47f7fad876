package testutils

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citrusworks/shopadmin/repository"
	"github.com/citrusworks/shopadmin/utils/optional"
)

func declare(t *testing.T, repo repository.Repository, operationKey, shortKey string) uuid.UUID {
	t.Helper()
	r, err := repo.DeclareAccessRight(repository.DeclareAccessRightArgs{
		OperationKey:     operationKey,
		ShortKey:         shortKey,
		ShortDescription: "Test right for " + shortKey,
	})
	require.NoError(t, err)
	return r.ID
}

func createRole(t *testing.T, repo repository.Repository, name string) uuid.UUID {
	t.Helper()
	r, err := repo.CreateRole(repository.CreateRoleArgs{
		Name:        name,
		Description: "role for tests",
		IsActive:    true,
	})
	require.NoError(t, err)
	return r.ID
}

func TestTestRepository_DeclareAccessRight(t *testing.T) {
	t.Parallel()
	repo := NewTestRepository(nil)

	id := declare(t, repo, "api.admin.coupon.destroy", "coupon_delete")

	t.Run("upsert keeps id", func(t *testing.T) {
		r, err := repo.DeclareAccessRight(repository.DeclareAccessRightArgs{
			OperationKey:     "api.admin.coupon.destroy",
			ShortKey:         "coupon_delete",
			ShortDescription: "Delete coupon (updated)",
		})
		require.NoError(t, err)
		assert.Equal(t, id, r.ID)
		assert.Equal(t, "Delete coupon (updated)", r.ShortDescription)
	})

	t.Run("short key collision", func(t *testing.T) {
		_, err := repo.DeclareAccessRight(repository.DeclareAccessRightArgs{
			OperationKey:     "api.admin.order.destroy",
			ShortKey:         "coupon_delete",
			ShortDescription: "Delete order",
		})
		assert.True(t, repository.IsArgError(err))
	})

	t.Run("short key immutable while granted", func(t *testing.T) {
		roleID := createRole(t, repo, "immutability check role")
		require.NoError(t, repo.GrantRight(roleID, id))

		_, err := repo.DeclareAccessRight(repository.DeclareAccessRightArgs{
			OperationKey:     "api.admin.coupon.destroy",
			ShortKey:         "coupon_remove",
			ShortDescription: "Delete coupon",
		})
		assert.True(t, repository.IsArgError(err))

		// 剥奪後は変更できる
		require.NoError(t, repo.RevokeRight(roleID, id))
		r, err := repo.DeclareAccessRight(repository.DeclareAccessRightArgs{
			OperationKey:     "api.admin.coupon.destroy",
			ShortKey:         "coupon_remove",
			ShortDescription: "Delete coupon",
		})
		require.NoError(t, err)
		assert.Equal(t, "coupon_remove", r.ShortKey)
	})
}

func TestTestRepository_DeleteAccessRight(t *testing.T) {
	t.Parallel()
	repo := NewTestRepository(nil)

	id := declare(t, repo, "api.admin.order.destroy", "order_delete")
	roleID := createRole(t, repo, "order managers")
	require.NoError(t, repo.GrantRight(roleID, id))

	assert.ErrorIs(t, repo.DeleteAccessRight(id), repository.ErrStillGranted)

	require.NoError(t, repo.RevokeRight(roleID, id))
	require.NoError(t, repo.DeleteAccessRight(id))
	_, err := repo.GetAccessRight(id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTestRepository_DeleteRole(t *testing.T) {
	t.Parallel()
	repo := NewTestRepository(nil)

	roleID := createRole(t, repo, "deletable role")
	u, err := repo.CreateUser(repository.CreateUserArgs{
		Name:   "role-holder",
		RoleID: uuid.NullUUID{UUID: roleID, Valid: true},
	})
	require.NoError(t, err)

	assert.ErrorIs(t, repo.DeleteRole(roleID), repository.ErrRoleInUse)

	require.NoError(t, repo.ChangeUserRole(u.ID, uuid.NullUUID{}))
	require.NoError(t, repo.DeleteRole(roleID))
	_, err = repo.GetRole(roleID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTestRepository_GetAccessRights(t *testing.T) {
	t.Parallel()
	repo := NewTestRepository(nil)

	declare(t, repo, "api.admin.coupon.index", "coupon_list")
	declare(t, repo, "api.admin.coupon.destroy", "coupon_delete")
	declare(t, repo, "api.admin.order.index", "order_list")

	t.Run("filter", func(t *testing.T) {
		t.Parallel()
		rs, total, err := repo.GetAccessRights(repository.AccessRightsQuery{Filter: "coupon"})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Len(t, rs, 2)
	})

	t.Run("sorted ascending by default", func(t *testing.T) {
		t.Parallel()
		rs, _, err := repo.GetAccessRights(repository.AccessRightsQuery{})
		require.NoError(t, err)
		require.Len(t, rs, 3)
		assert.Equal(t, "api.admin.coupon.destroy", rs[0].OperationKey)
		assert.Equal(t, "api.admin.order.index", rs[2].OperationKey)
	})

	t.Run("pagination", func(t *testing.T) {
		t.Parallel()
		rs, total, err := repo.GetAccessRights(repository.AccessRightsQuery{Page: 2, PerPage: 2})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Len(t, rs, 1)
	})

	t.Run("sort by details", func(t *testing.T) {
		t.Parallel()
		rs, _, err := repo.GetAccessRights(repository.AccessRightsQuery{SortBy: "details", Descending: true})
		require.NoError(t, err)
		assert.Len(t, rs, 3)
	})

	t.Run("unknown sort column", func(t *testing.T) {
		t.Parallel()
		_, _, err := repo.GetAccessRights(repository.AccessRightsQuery{SortBy: "id"})
		assert.True(t, repository.IsArgError(err))
	})
}

func TestTestRepository_GetRoles(t *testing.T) {
	t.Parallel()
	repo := NewTestRepository(nil)

	mustUpdate := func(id uuid.UUID, description string) {
		require.NoError(t, repo.UpdateRole(id, repository.UpdateRoleArgs{
			Description: optional.NewString(description, true),
		}))
	}
	mustUpdate(createRole(t, repo, "warehouse staff"), "b: stock operations")
	mustUpdate(createRole(t, repo, "accounting staff"), "a: billing operations")

	t.Run("sort by description", func(t *testing.T) {
		t.Parallel()
		rs, _, err := repo.GetRoles(repository.RolesQuery{SortBy: "description"})
		require.NoError(t, err)
		require.Len(t, rs, 2)
		assert.Equal(t, "accounting staff", rs[0].Name)
		assert.Equal(t, "warehouse staff", rs[1].Name)
	})

	t.Run("unknown sort column", func(t *testing.T) {
		t.Parallel()
		_, _, err := repo.GetRoles(repository.RolesQuery{SortBy: "id"})
		assert.True(t, repository.IsArgError(err))
	})
}

func TestTestRepository_UpdateRole(t *testing.T) {
	t.Parallel()
	repo := NewTestRepository(nil)

	roleID := createRole(t, repo, "update target role")

	t.Run("multibyte description counts runes", func(t *testing.T) {
		require.NoError(t, repo.UpdateRole(roleID, repository.UpdateRoleArgs{
			Description: optional.NewString("商品管理担当", true), // 6 runes
		}))
		r, err := repo.GetRole(roleID)
		require.NoError(t, err)
		assert.Equal(t, "商品管理担当", r.Description)
	})

	t.Run("too short description", func(t *testing.T) {
		err := repo.UpdateRole(roleID, repository.UpdateRoleArgs{
			Description: optional.NewString("商品担当", true), // 4 runes
		})
		assert.True(t, repository.IsArgError(err))
	})

	t.Run("multibyte name counts runes", func(t *testing.T) {
		require.NoError(t, repo.UpdateRole(roleID, repository.UpdateRoleArgs{
			Name: optional.NewString("商品管理ロール", true),
		}))
	})
}

func TestTestRepository_UpdateAccessRight(t *testing.T) {
	t.Parallel()
	repo := NewTestRepository(nil)

	id := declare(t, repo, "api.admin.product.update", "product_edit")

	t.Run("multibyte short description counts runes", func(t *testing.T) {
		require.NoError(t, repo.UpdateAccessRight(id, repository.UpdateAccessRightArgs{
			ShortDescription: optional.NewString("商品情報の更新", true), // 7 runes
		}))
	})

	t.Run("too short short description", func(t *testing.T) {
		err := repo.UpdateAccessRight(id, repository.UpdateAccessRightArgs{
			ShortDescription: optional.NewString("商品更新", true), // 4 runes
		})
		assert.True(t, repository.IsArgError(err))
	})

	t.Run("empty details allowed", func(t *testing.T) {
		require.NoError(t, repo.UpdateAccessRight(id, repository.UpdateAccessRightArgs{
			Details: optional.NewString("", true),
		}))
	})

	t.Run("too short details", func(t *testing.T) {
		err := repo.UpdateAccessRight(id, repository.UpdateAccessRightArgs{
			Details: optional.NewString("short", true),
		})
		assert.True(t, repository.IsArgError(err))
	})
}

func TestTestRepository_GrantRight(t *testing.T) {
	t.Parallel()
	repo := NewTestRepository(nil)

	roleID := createRole(t, repo, "grant target role")
	id := declare(t, repo, "api.admin.coupon.show", "coupon_view")

	require.NoError(t, repo.GrantRight(roleID, id))
	// 冪等
	require.NoError(t, repo.GrantRight(roleID, id))

	rights, err := repo.GetGrantedRights(roleID)
	require.NoError(t, err)
	assert.Len(t, rights, 1)

	assert.ErrorIs(t, repo.GrantRight(roleID, uuid.Must(uuid.NewV4())), repository.ErrNotFound)
	assert.ErrorIs(t, repo.GrantRight(uuid.Must(uuid.NewV4()), id), repository.ErrNotFound)
	assert.ErrorIs(t, repo.GrantRight(uuid.Nil, id), repository.ErrNilID)
}

func TestTestRepository_FeatureFlags(t *testing.T) {
	t.Parallel()
	repo := NewTestRepository(nil)

	require.NoError(t, repo.SetFeatureFlag("new_dashboard", true))
	require.NoError(t, repo.SetFeatureFlag("beta_reports", false))

	names, err := repo.GetEnabledFeatures()
	require.NoError(t, err)
	assert.Equal(t, []string{"new_dashboard"}, names)

	// 再設定で上書きされる
	require.NoError(t, repo.SetFeatureFlag("new_dashboard", false))
	names, err = repo.GetEnabledFeatures()
	require.NoError(t, err)
	assert.Empty(t, names)

	assert.True(t, repository.IsArgError(repo.SetFeatureFlag("New Dashboard", true)))
}
