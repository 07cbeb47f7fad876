package v3

import (
	"net/http"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citrusworks/shopadmin/router/consts"
	"github.com/citrusworks/shopadmin/service/rbac/right"
	"github.com/citrusworks/shopadmin/service/rbac/role"
)

func TestHandlers_GetRoles(t *testing.T) {
	t.Parallel()

	path := "/api/v3/roles"
	env := setup(t)
	admin := env.CreateUser(t, rand, role.Admin)

	t.Run("not logged in", func(t *testing.T) {
		t.Parallel()
		e := env.R(t)
		e.GET(path).
			Expect().
			Status(http.StatusUnauthorized)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		e := env.R(t)
		data := successObject(t, e.GET(path).
			WithHeader(consts.HeaderForwardedUser, admin.Name).
			Expect().
			Status(http.StatusOK))
		items := data.Value("items").Array()
		items.Length().Ge(2)
		first := items.Value(0).Object()
		first.Value("name").String().IsEqual(role.Admin)
		first.Value("userCount").Number().IsEqual(1)
		first.NotContainsKey("users")
	})

	t.Run("success (with users)", func(t *testing.T) {
		t.Parallel()
		e := env.R(t)
		data := successObject(t, e.GET(path).
			WithQuery("withUsers", "true").
			WithQuery("filter", role.Admin).
			WithHeader(consts.HeaderForwardedUser, admin.Name).
			Expect().
			Status(http.StatusOK))
		items := data.Value("items").Array()
		items.Length().IsEqual(1)
		users := items.Value(0).Object().Value("users").Array()
		users.Length().IsEqual(1)
		users.Value(0).Object().Value("name").String().IsEqual(admin.Name)
	})
}

func TestHandlers_CreateRole(t *testing.T) {
	t.Parallel()

	path := "/api/v3/roles"
	env := setup(t)
	admin := env.CreateUser(t, rand, role.Admin)

	t.Run("bad request (name too short)", func(t *testing.T) {
		t.Parallel()
		e := env.R(t)
		res := e.POST(path).
			WithHeader(consts.HeaderForwardedUser, admin.Name).
			WithJSON(map[string]interface{}{"name": "Ops", "description": "operations team"}).
			Expect().
			Status(http.StatusBadRequest)
		failure(t, res).Value("errors").Object().ContainsKey("name")
	})

	t.Run("conflict", func(t *testing.T) {
		t.Parallel()
		e := env.R(t)
		e.POST(path).
			WithHeader(consts.HeaderForwardedUser, admin.Name).
			WithJSON(map[string]interface{}{"name": role.Admin, "description": "duplicated admin"}).
			Expect().
			Status(http.StatusConflict)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		e := env.R(t)
		data := successObject(t, e.POST(path).
			WithHeader(consts.HeaderForwardedUser, admin.Name).
			WithJSON(map[string]interface{}{"name": "Warehouse", "description": "stock management staff"}).
			Expect().
			Status(http.StatusCreated))
		data.Value("name").String().IsEqual("Warehouse")
		// isActiveは省略時true
		data.Value("isActive").Boolean().IsTrue()
		data.Value("userCount").Number().IsEqual(0)

		r, err := env.Repository.GetRoleByName("Warehouse")
		require.NoError(t, err)
		assert.True(t, r.IsActive)
	})
}

func TestHandlers_GetRole(t *testing.T) {
	t.Parallel()

	path := "/api/v3/roles/{roleID}"
	env := setup(t)
	admin := env.CreateUser(t, rand, role.Admin)

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		e := env.R(t)
		e.GET(path, uuid.Must(uuid.NewV4())).
			WithHeader(consts.HeaderForwardedUser, admin.Name).
			Expect().
			Status(http.StatusNotFound)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		sales, err := env.Repository.GetRoleByName(role.Salesperson)
		require.NoError(t, err)

		e := env.R(t)
		data := successObject(t, e.GET(path, sales.ID).
			WithHeader(consts.HeaderForwardedUser, admin.Name).
			Expect().
			Status(http.StatusOK))
		data.Value("name").String().IsEqual(role.Salesperson)
		rights := data.Value("rights").Array()
		rights.Length().Gt(0)
		for _, v := range rights.Iter() {
			key := v.Object().Value("operationKey").String().Raw()
			assert.False(t, right.Key(key).IsDestructive(), key)
		}
	})
}

func TestHandlers_EditRole(t *testing.T) {
	t.Parallel()

	path := "/api/v3/roles/{roleID}"
	env := setup(t)
	admin := env.CreateUser(t, rand, role.Admin)
	target := env.CreateRole(t, rand)

	t.Run("conflict (rename to existing)", func(t *testing.T) {
		t.Parallel()
		e := env.R(t)
		e.PATCH(path, target.ID).
			WithHeader(consts.HeaderForwardedUser, admin.Name).
			WithJSON(map[string]interface{}{"name": role.Admin}).
			Expect().
			Status(http.StatusConflict)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		e := env.R(t)
		e.PATCH(path, uuid.Must(uuid.NewV4())).
			WithHeader(consts.HeaderForwardedUser, admin.Name).
			WithJSON(map[string]interface{}{"isActive": false}).
			Expect().
			Status(http.StatusNotFound)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		e := env.R(t)
		e.PATCH(path, target.ID).
			WithHeader(consts.HeaderForwardedUser, admin.Name).
			WithJSON(map[string]interface{}{"isActive": false}).
			Expect().
			Status(http.StatusNoContent)

		r, err := env.Repository.GetRole(target.ID)
		require.NoError(t, err)
		assert.False(t, r.IsActive)
	})
}

func TestHandlers_DeleteRole(t *testing.T) {
	t.Parallel()

	path := "/api/v3/roles/{roleID}"
	env := setup(t)
	admin := env.CreateUser(t, rand, role.Admin)

	t.Run("conflict (role in use)", func(t *testing.T) {
		t.Parallel()
		inUse := env.CreateRole(t, rand)
		env.CreateUser(t, rand, inUse.Name)

		e := env.R(t)
		e.DELETE(path, inUse.ID).
			WithHeader(consts.HeaderForwardedUser, admin.Name).
			Expect().
			Status(http.StatusConflict)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		target := env.CreateRole(t, rand)

		e := env.R(t)
		e.DELETE(path, target.ID).
			WithHeader(consts.HeaderForwardedUser, admin.Name).
			Expect().
			Status(http.StatusNoContent)
	})
}

func TestHandlers_GrantRoleRight(t *testing.T) {
	t.Parallel()

	path := "/api/v3/roles/{roleID}/rights/{rightID}"
	env := setup(t)
	admin := env.CreateUser(t, rand, role.Admin)
	target := env.CreateRole(t, rand)
	couponIndex := env.RightByKey(t, right.CouponIndex.Name())

	t.Run("not found (unknown right)", func(t *testing.T) {
		t.Parallel()
		e := env.R(t)
		e.PUT(path, target.ID, uuid.Must(uuid.NewV4())).
			WithHeader(consts.HeaderForwardedUser, admin.Name).
			Expect().
			Status(http.StatusNotFound)
	})

	t.Run("success", func(t *testing.T) {
		e := env.R(t)
		e.PUT(path, target.ID, couponIndex.ID).
			WithHeader(consts.HeaderForwardedUser, admin.Name).
			Expect().
			Status(http.StatusNoContent)

		// 付与直後の判定に反映される
		operator := env.CreateUser(t, rand, target.Name)
		data := successObject(t, e.GET("/api/v3/users/me/permissions").
			WithHeader(consts.HeaderForwardedUser, operator.Name).
			Expect().
			Status(http.StatusOK))
		data.Value("grants").Array().Length().IsEqual(1)

		// 剥奪で消える
		e.DELETE(path, target.ID, couponIndex.ID).
			WithHeader(consts.HeaderForwardedUser, admin.Name).
			Expect().
			Status(http.StatusNoContent)
		data = successObject(t, e.GET("/api/v3/users/me/permissions").
			WithHeader(consts.HeaderForwardedUser, operator.Name).
			Expect().
			Status(http.StatusOK))
		data.Value("grants").Array().Length().IsEqual(0)
	})
}
