package v3

import (
	"errors"
	"net/http"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"

	"github.com/citrusworks/shopadmin/repository"
	"github.com/citrusworks/shopadmin/router/extension/herror"
	"github.com/citrusworks/shopadmin/utils/optional"
	"github.com/citrusworks/shopadmin/utils/validator"
)

// GetRoles GET /roles
func (h *Handlers) GetRoles(c echo.Context) error {
	q := repository.RolesQuery{
		Filter:     c.QueryParam("filter"),
		SortBy:     c.QueryParam("sort"),
		Descending: isTrue(c.QueryParam("desc")),
		Page:       getIntQuery(c, "page"),
		PerPage:    getIntQuery(c, "perPage"),
		WithUsers:  isTrue(c.QueryParam("withUsers")),
	}

	roles, total, err := h.Repo.GetRoles(q)
	if err != nil {
		if repository.IsArgError(err) {
			return herror.BadRequest(err)
		}
		return herror.InternalServerError(err)
	}

	page, perPage := normalizePaging(q.Page, q.PerPage)
	return success(c, http.StatusOK, listResponse{
		Total:   total,
		Page:    page,
		PerPage: perPage,
		Items:   formatRoleDetails(roles),
	})
}

// PostRoleRequest POST /roles リクエストボディ
type PostRoleRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	IsActive    optional.Bool `json:"isActive"`
	IsDefault   optional.Bool `json:"isDefault"`
}

func (r PostRoleRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Name, validator.RoleNameRuleRequired...),
		vd.Field(&r.Description, validator.RoleDescriptionRuleRequired...),
	)
}

// CreateRole POST /roles
func (h *Handlers) CreateRole(c echo.Context) error {
	var req PostRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	role, err := h.Repo.CreateRole(repository.CreateRoleArgs{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive.ValueOrDefault(true),
		IsDefault:   req.IsDefault.ValueOrZero(),
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyExists):
			return herror.Conflict("name conflicts")
		case repository.IsArgError(err):
			return herror.BadRequest(err)
		default:
			return herror.InternalServerError(err)
		}
	}

	detail, err := h.getRoleDetail(role.ID)
	if err != nil {
		return err
	}
	return success(c, http.StatusCreated, detail)
}

// GetRole GET /roles/:roleID
func (h *Handlers) GetRole(c echo.Context) error {
	roleID, err := getParamAsUUID(c, "roleID")
	if err != nil {
		return err
	}

	detail, err := h.getRoleDetail(roleID)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, detail)
}

// getRoleDetail ロールと保有権・割り当て数をまとめて取得
func (h *Handlers) getRoleDetail(roleID uuid.UUID) (*roleResponse, error) {
	role, err := h.Repo.GetRole(roleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, herror.NotFound()
		}
		return nil, herror.InternalServerError(err)
	}

	count, err := h.Repo.CountUsersByRole(roleID)
	if err != nil {
		return nil, herror.InternalServerError(err)
	}
	rights, err := h.Repo.GetGrantedRights(roleID)
	if err != nil {
		return nil, herror.InternalServerError(err)
	}

	detail := formatRoleDetail(&repository.RoleDetail{Role: *role, UserCount: count})
	detail.Rights = formatAccessRights(rights)
	return detail, nil
}

// PatchRoleRequest PATCH /roles/:roleID リクエストボディ
type PatchRoleRequest struct {
	Name        optional.String `json:"name"`
	Description optional.String `json:"description"`
	IsActive    optional.Bool   `json:"isActive"`
	IsDefault   optional.Bool   `json:"isDefault"`
}

// EditRole PATCH /roles/:roleID
func (h *Handlers) EditRole(c echo.Context) error {
	roleID, err := getParamAsUUID(c, "roleID")
	if err != nil {
		return err
	}

	var req PatchRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err = h.Repo.UpdateRole(roleID, repository.UpdateRoleArgs{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
		IsDefault:   req.IsDefault,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return herror.NotFound()
		case errors.Is(err, repository.ErrAlreadyExists):
			return herror.Conflict("name conflicts")
		case repository.IsArgError(err):
			return herror.BadRequest(err)
		default:
			return herror.InternalServerError(err)
		}
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteRole DELETE /roles/:roleID
func (h *Handlers) DeleteRole(c echo.Context) error {
	roleID, err := getParamAsUUID(c, "roleID")
	if err != nil {
		return err
	}

	if err := h.Repo.DeleteRole(roleID); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return herror.NotFound()
		case errors.Is(err, repository.ErrRoleInUse):
			return herror.Conflict("this role is assigned to one or more users")
		default:
			return herror.InternalServerError(err)
		}
	}
	return c.NoContent(http.StatusNoContent)
}

// GrantRoleRight PUT /roles/:roleID/rights/:rightID
func (h *Handlers) GrantRoleRight(c echo.Context) error {
	roleID, err := getParamAsUUID(c, "roleID")
	if err != nil {
		return err
	}
	rightID, err := getParamAsUUID(c, "rightID")
	if err != nil {
		return err
	}

	if err := h.RBAC.GrantRight(c.Request().Context(), roleID, rightID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return herror.NotFound()
		}
		return herror.InternalServerError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// RevokeRoleRight DELETE /roles/:roleID/rights/:rightID
func (h *Handlers) RevokeRoleRight(c echo.Context) error {
	roleID, err := getParamAsUUID(c, "roleID")
	if err != nil {
		return err
	}
	rightID, err := getParamAsUUID(c, "rightID")
	if err != nil {
		return err
	}

	if err := h.RBAC.RevokeRight(c.Request().Context(), roleID, rightID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return herror.NotFound()
		}
		return herror.InternalServerError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
