package v3

import (
	"errors"
	"net/http"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"

	"github.com/citrusworks/shopadmin/repository"
	"github.com/citrusworks/shopadmin/router/extension/herror"
	"github.com/citrusworks/shopadmin/utils/optional"
	"github.com/citrusworks/shopadmin/utils/validator"
)

// GetMyPermissions GET /users/me/permissions
//
// セッション開始時に1回だけ取得されるスナップショット。以降の判定は
// サーバー側で毎回行われるため、クライアントはこれを再取得しません。
func (h *Handlers) GetMyPermissions(c echo.Context) error {
	user := getRequestUser(c)

	snapshot, err := h.RBAC.MakeSnapshot(c.Request().Context(), user.RoleID)
	if err != nil {
		return herror.InternalServerError(err)
	}
	return success(c, http.StatusOK, snapshot)
}

// PostUserRequest POST /users リクエストボディ
type PostUserRequest struct {
	Name        string        `json:"name"`
	DisplayName string        `json:"displayName"`
	RoleID      optional.UUID `json:"roleId"`
}

func (r PostUserRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Name, validator.UserNameRuleRequired...),
		vd.Field(&r.DisplayName, vd.RuneLength(0, 64)),
	)
}

// CreateUser POST /users
func (h *Handlers) CreateUser(c echo.Context) error {
	var req PostUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.Repo.CreateUser(repository.CreateUserArgs{
		Name:        req.Name,
		DisplayName: req.DisplayName,
		RoleID:      req.RoleID.NullUUID,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyExists):
			return herror.Conflict("name conflicts")
		case errors.Is(err, repository.ErrNotFound):
			return herror.BadRequest("unknown role")
		case repository.IsArgError(err):
			return herror.BadRequest(err)
		default:
			return herror.InternalServerError(err)
		}
	}
	return success(c, http.StatusCreated, formatUser(user))
}

// GetUser GET /users/:userID
func (h *Handlers) GetUser(c echo.Context) error {
	userID, err := getParamAsUUID(c, "userID")
	if err != nil {
		return err
	}

	user, err := h.Repo.GetUser(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return herror.NotFound()
		}
		return herror.InternalServerError(err)
	}
	return success(c, http.StatusOK, formatUser(user))
}

// PutUserRoleRequest PUT /users/:userID/role リクエストボディ
type PutUserRoleRequest struct {
	RoleID optional.UUID `json:"roleId"`
}

// ChangeUserRole PUT /users/:userID/role
//
// roleIdにnullを指定すると割り当てを解除します。
func (h *Handlers) ChangeUserRole(c echo.Context) error {
	userID, err := getParamAsUUID(c, "userID")
	if err != nil {
		return err
	}

	var req PutUserRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.Repo.ChangeUserRole(userID, req.RoleID.NullUUID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return herror.NotFound()
		}
		return herror.InternalServerError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetVersion GET /version
func (h *Handlers) GetVersion(c echo.Context) error {
	return success(c, http.StatusOK, echo.Map{"version": h.Version, "revision": h.Revision})
}
