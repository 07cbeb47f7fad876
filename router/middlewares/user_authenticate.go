package middlewares

import (
	"errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/singleflight"

	"github.com/citrusworks/shopadmin/model"
	"github.com/citrusworks/shopadmin/repository"
	"github.com/citrusworks/shopadmin/router/consts"
	"github.com/citrusworks/shopadmin/router/extension/herror"
)

// UserAuthenticate リクエスト認証ミドルウェア
//
// 認証は前段のプロキシが行い、検証済みのユーザー名をX-Forwarded-Userヘッダーで
// 受け取ります。ヘッダーが無い、または未知のユーザーの場合は401を返します。
func UserAuthenticate(repo repository.Repository) echo.MiddlewareFunc {
	var sfUser singleflight.Group

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			name := c.Request().Header.Get(consts.HeaderForwardedUser)
			if len(name) == 0 {
				return herror.Unauthorized("you are not logged in")
			}

			uI, err, _ := sfUser.Do(name, func() (interface{}, error) { return repo.GetUserByName(name) })
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return herror.Unauthorized("unknown user")
				}
				return herror.InternalServerError(err)
			}
			user := uI.(*model.User)

			c.Set(consts.KeyUser, user)
			c.Set(consts.KeyUserID, user.ID)
			return next(c)
		}
	}
}
