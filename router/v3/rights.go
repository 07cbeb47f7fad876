package v3

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/citrusworks/shopadmin/repository"
	"github.com/citrusworks/shopadmin/router/extension/herror"
	"github.com/citrusworks/shopadmin/utils/optional"
)

// GetRights GET /rights
func (h *Handlers) GetRights(c echo.Context) error {
	q := repository.AccessRightsQuery{
		Filter:     c.QueryParam("filter"),
		SortBy:     c.QueryParam("sort"),
		Descending: isTrue(c.QueryParam("desc")),
		Page:       getIntQuery(c, "page"),
		PerPage:    getIntQuery(c, "perPage"),
	}

	rights, total, err := h.Repo.GetAccessRights(q)
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
		Items:   formatAccessRights(rights),
	})
}

// GetRight GET /rights/:rightID
func (h *Handlers) GetRight(c echo.Context) error {
	rightID, err := getParamAsUUID(c, "rightID")
	if err != nil {
		return err
	}

	right, err := h.Repo.GetAccessRight(rightID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return herror.NotFound()
		}
		return herror.InternalServerError(err)
	}
	return success(c, http.StatusOK, formatAccessRight(right))
}

// PatchRightRequest PATCH /rights/:rightID リクエストボディ
type PatchRightRequest struct {
	ShortDescription optional.String `json:"shortDescription"`
	Details          optional.String `json:"details"`
}

// EditRight PATCH /rights/:rightID
func (h *Handlers) EditRight(c echo.Context) error {
	rightID, err := getParamAsUUID(c, "rightID")
	if err != nil {
		return err
	}

	var req PatchRightRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err = h.Repo.UpdateAccessRight(rightID, repository.UpdateAccessRightArgs{
		ShortDescription: req.ShortDescription,
		Details:          req.Details,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return herror.NotFound()
		case repository.IsArgError(err):
			return herror.BadRequest(err)
		default:
			return herror.InternalServerError(err)
		}
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteRight DELETE /rights/:rightID
func (h *Handlers) DeleteRight(c echo.Context) error {
	rightID, err := getParamAsUUID(c, "rightID")
	if err != nil {
		return err
	}

	if err := h.Repo.DeleteAccessRight(rightID); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return herror.NotFound()
		case errors.Is(err, repository.ErrStillGranted):
			return herror.Conflict("this right is still granted to one or more roles")
		default:
			return herror.InternalServerError(err)
		}
	}
	return c.NoContent(http.StatusNoContent)
}
