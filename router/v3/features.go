package v3

import (
	"net/http"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"

	"github.com/citrusworks/shopadmin/repository"
	"github.com/citrusworks/shopadmin/router/extension/herror"
	"github.com/citrusworks/shopadmin/utils/validator"
)

// GetFeatures GET /features
func (h *Handlers) GetFeatures(c echo.Context) error {
	flags, err := h.Repo.GetFeatureFlags()
	if err != nil {
		return herror.InternalServerError(err)
	}
	return success(c, http.StatusOK, formatFeatureFlags(flags))
}

// PatchFeatureRequest PATCH /features リクエストボディ
type PatchFeatureRequest struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

func (r PatchFeatureRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Name, validator.FeatureNameRuleRequired...),
	)
}

// EditFeature PATCH /features
func (h *Handlers) EditFeature(c echo.Context) error {
	var req PatchFeatureRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.Repo.SetFeatureFlag(req.Name, req.Enabled); err != nil {
		if repository.IsArgError(err) {
			return herror.BadRequest(err)
		}
		return herror.InternalServerError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
