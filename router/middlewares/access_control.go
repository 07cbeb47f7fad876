package middlewares

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/citrusworks/shopadmin/model"
	"github.com/citrusworks/shopadmin/router/consts"
	"github.com/citrusworks/shopadmin/router/extension/herror"
	"github.com/citrusworks/shopadmin/service/rbac"
	"github.com/citrusworks/shopadmin/service/rbac/right"
)

// AccessControlMiddlewareGenerator アクセスコントロールミドルウェアのジェネレーターを返します
//
// 判定の権威はここ。クライアント側のスナップショットはUIの出し分け専用です。
// ロール未割り当てのユーザーと判定材料の取得失敗は常に拒否します。
func AccessControlMiddlewareGenerator(r rbac.RBAC) func(keys ...right.Key) echo.MiddlewareFunc {
	return func(keys ...right.Key) echo.MiddlewareFunc {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				user := c.Get(consts.KeyUser).(*model.User)
				if !user.RoleID.Valid {
					return herror.Forbidden(fmt.Sprintf("you are not permitted to request to '%s'", c.Request().URL.Path))
				}

				for _, key := range keys {
					ok, err := r.IsAuthorized(c.Request().Context(), user.RoleID.UUID, key.Name())
					if err != nil {
						return herror.InternalServerError(err)
					}
					if !ok {
						return herror.Forbidden(fmt.Sprintf("you are not permitted to request to '%s'", c.Request().URL.Path))
					}
				}
				return next(c)
			}
		}
	}
}
