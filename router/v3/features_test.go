package v3

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/citrusworks/shopadmin/router/consts"
	"github.com/citrusworks/shopadmin/service/rbac/role"
)

func TestHandlers_GetFeatures(t *testing.T) {
	t.Parallel()

	path := "/api/v3/features"
	env := setup(t)
	admin := env.CreateUser(t, rand, role.Admin)
	require.NoError(t, env.Repository.SetFeatureFlag("beta_reports", false))
	require.NoError(t, env.Repository.SetFeatureFlag("new_dashboard", true))

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
		obj := e.GET(path).
			WithHeader(consts.HeaderForwardedUser, admin.Name).
			Expect().
			Status(http.StatusOK).
			JSON().Object()
		obj.Value("success").Boolean().IsTrue()
		items := obj.Value("data").Array()
		items.Length().IsEqual(2)
		// 名前順で返る
		items.Value(0).Object().Value("name").String().IsEqual("beta_reports")
		items.Value(1).Object().Value("enabled").Boolean().IsTrue()
	})
}

func TestHandlers_EditFeature(t *testing.T) {
	t.Parallel()

	path := "/api/v3/features"
	env := setup(t)
	admin := env.CreateUser(t, rand, role.Admin)

	t.Run("bad request (invalid name)", func(t *testing.T) {
		t.Parallel()
		e := env.R(t)
		e.PATCH(path).
			WithHeader(consts.HeaderForwardedUser, admin.Name).
			WithJSON(map[string]interface{}{"name": "New Dashboard", "enabled": true}).
			Expect().
			Status(http.StatusBadRequest)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		e := env.R(t)
		e.PATCH(path).
			WithHeader(consts.HeaderForwardedUser, admin.Name).
			WithJSON(map[string]interface{}{"name": "beta_reports", "enabled": true}).
			Expect().
			Status(http.StatusNoContent)

		names, err := env.Repository.GetEnabledFeatures()
		require.NoError(t, err)
		require.Contains(t, names, "beta_reports")
	})
}
