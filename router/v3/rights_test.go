package v3

import (
	"net/http"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citrusworks/shopadmin/repository"
	"github.com/citrusworks/shopadmin/router/consts"
	"github.com/citrusworks/shopadmin/service/rbac/right"
	"github.com/citrusworks/shopadmin/service/rbac/role"
)

func TestHandlers_GetRights(t *testing.T) {
	t.Parallel()

	path := "/api/v3/rights"
	env := setup(t)
	admin := env.CreateUser(t, rand, role.Admin)
	nobody := env.CreateUser(t, rand, "")

	t.Run("not logged in", func(t *testing.T) {
		t.Parallel()
		e := env.R(t)
		res := e.GET(path).
			Expect().
			Status(http.StatusUnauthorized)
		failure(t, res).Value("message").String().IsEqual("you are not logged in")
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()
		e := env.R(t)
		e.GET(path).
			WithHeader(consts.HeaderForwardedUser, "ghost").
			Expect().
			Status(http.StatusUnauthorized)
	})

	t.Run("forbidden without role", func(t *testing.T) {
		t.Parallel()
		e := env.R(t)
		e.GET(path).
			WithHeader(consts.HeaderForwardedUser, nobody.Name).
			Expect().
			Status(http.StatusForbidden)
	})

	t.Run("bad request (unknown sort)", func(t *testing.T) {
		t.Parallel()
		e := env.R(t)
		e.GET(path).
			WithQuery("sort", "id").
			WithHeader(consts.HeaderForwardedUser, admin.Name).
			Expect().
			Status(http.StatusBadRequest)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		e := env.R(t)
		data := successObject(t, e.GET(path).
			WithHeader(consts.HeaderForwardedUser, admin.Name).
			Expect().
			Status(http.StatusOK))
		data.Value("total").Number().IsEqual(len(right.Definitions()))
		data.Value("page").Number().IsEqual(1)
		data.Value("perPage").Number().IsEqual(15)
		data.Value("items").Array().Length().IsEqual(15)
	})

	t.Run("success (filter)", func(t *testing.T) {
		t.Parallel()
		e := env.R(t)
		data := successObject(t, e.GET(path).
			WithQuery("filter", "coupon").
			WithHeader(consts.HeaderForwardedUser, admin.Name).
			Expect().
			Status(http.StatusOK))
		data.Value("total").Number().IsEqual(5)
		first := data.Value("items").Array().Value(0).Object()
		first.Value("operationKey").String().IsEqual(right.CouponCreate.Name())
	})
}

func TestHandlers_GetRight(t *testing.T) {
	t.Parallel()

	path := "/api/v3/rights/{rightID}"
	env := setup(t)
	admin := env.CreateUser(t, rand, role.Admin)
	target := env.RightByKey(t, right.CouponDestroy.Name())

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		e := env.R(t)
		e.GET(path, uuid.Must(uuid.NewV4())).
			WithHeader(consts.HeaderForwardedUser, admin.Name).
			Expect().
			Status(http.StatusNotFound)
	})

	t.Run("not found (invalid uuid)", func(t *testing.T) {
		t.Parallel()
		e := env.R(t)
		e.GET(path, "not-a-uuid").
			WithHeader(consts.HeaderForwardedUser, admin.Name).
			Expect().
			Status(http.StatusNotFound)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		e := env.R(t)
		data := successObject(t, e.GET(path, target.ID).
			WithHeader(consts.HeaderForwardedUser, admin.Name).
			Expect().
			Status(http.StatusOK))
		data.Value("id").String().IsEqual(target.ID.String())
		data.Value("operationKey").String().IsEqual(right.CouponDestroy.Name())
		data.Value("shortKey").String().IsEqual("coupon_delete")
	})
}

func TestHandlers_EditRight(t *testing.T) {
	t.Parallel()

	path := "/api/v3/rights/{rightID}"
	env := setup(t)
	admin := env.CreateUser(t, rand, role.Admin)
	target := env.RightByKey(t, right.PaymentShow.Name())

	t.Run("bad request (description too short)", func(t *testing.T) {
		t.Parallel()
		e := env.R(t)
		e.PATCH(path, target.ID).
			WithHeader(consts.HeaderForwardedUser, admin.Name).
			WithJSON(map[string]interface{}{"shortDescription": "abc"}).
			Expect().
			Status(http.StatusBadRequest)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		e := env.R(t)
		e.PATCH(path, uuid.Must(uuid.NewV4())).
			WithHeader(consts.HeaderForwardedUser, admin.Name).
			WithJSON(map[string]interface{}{"shortDescription": "View payment detail"}).
			Expect().
			Status(http.StatusNotFound)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		e := env.R(t)
		e.PATCH(path, target.ID).
			WithHeader(consts.HeaderForwardedUser, admin.Name).
			WithJSON(map[string]interface{}{"shortDescription": "View payment detail"}).
			Expect().
			Status(http.StatusNoContent)

		r, err := env.Repository.GetAccessRight(target.ID)
		require.NoError(t, err)
		assert.Equal(t, "View payment detail", r.ShortDescription)
	})
}

func TestHandlers_DeleteRight(t *testing.T) {
	t.Parallel()

	path := "/api/v3/rights/{rightID}"
	env := setup(t)
	admin := env.CreateUser(t, rand, role.Admin)

	t.Run("conflict (still granted)", func(t *testing.T) {
		t.Parallel()
		e := env.R(t)
		// シード済みの権利は初期ロールが保有している
		target := env.RightByKey(t, right.CouponIndex.Name())
		res := e.DELETE(path, target.ID).
			WithHeader(consts.HeaderForwardedUser, admin.Name).
			Expect().
			Status(http.StatusConflict)
		failure(t, res)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		orphan, err := env.Repository.DeclareAccessRight(repository.DeclareAccessRightArgs{
			OperationKey:     "api.admin.banner.destroy",
			ShortKey:         "banner_delete",
			ShortDescription: "Delete banner",
		})
		require.NoError(t, err)

		e := env.R(t)
		e.DELETE(path, orphan.ID).
			WithHeader(consts.HeaderForwardedUser, admin.Name).
			Expect().
			Status(http.StatusNoContent)

		_, err = env.Repository.GetAccessRight(orphan.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
