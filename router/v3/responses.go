package v3

import (
	"time"

	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"

	"github.com/citrusworks/shopadmin/model"
	"github.com/citrusworks/shopadmin/repository"
	"github.com/citrusworks/shopadmin/router/extension"
)

// response 成功エンベロープ
type response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func success(c echo.Context, code int, data interface{}) error {
	return extension.JSON(c, code, response{Success: true, Data: data})
}

// listResponse 一覧レスポンス
type listResponse struct {
	Total   int64       `json:"total"`
	Page    int         `json:"page"`
	PerPage int         `json:"perPage"`
	Items   interface{} `json:"items"`
}

type accessRightResponse struct {
	ID               uuid.UUID `json:"id"`
	OperationKey     string    `json:"operationKey"`
	ShortKey         string    `json:"shortKey"`
	ShortDescription string    `json:"shortDescription"`
	Details          string    `json:"details,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func formatAccessRight(r *model.AccessRight) *accessRightResponse {
	return &accessRightResponse{
		ID:               r.ID,
		OperationKey:     r.OperationKey,
		ShortKey:         r.ShortKey,
		ShortDescription: r.ShortDescription,
		Details:          r.Details,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func formatAccessRights(rs []*model.AccessRight) []*accessRightResponse {
	return lo.Map(rs, func(r *model.AccessRight, _ int) *accessRightResponse { return formatAccessRight(r) })
}

type roleResponse struct {
	ID          uuid.UUID              `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	IsActive    bool                   `json:"isActive"`
	IsDefault   bool                   `json:"isDefault"`
	UserCount   int64                  `json:"userCount"`
	Users       []*userResponse        `json:"users,omitempty"`
	Rights      []*accessRightResponse `json:"rights,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

func formatRoleDetail(d *repository.RoleDetail) *roleResponse {
	r := &roleResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		IsActive:    d.IsActive,
		IsDefault:   d.IsDefault,
		UserCount:   d.UserCount,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if d.Users != nil {
		r.Users = formatUsers(d.Users)
	}
	return r
}

func formatRoleDetails(ds []*repository.RoleDetail) []*roleResponse {
	return lo.Map(ds, func(d *repository.RoleDetail, _ int) *roleResponse { return formatRoleDetail(d) })
}

type userResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	DisplayName string     `json:"displayName"`
	RoleID      *uuid.UUID `json:"roleId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func formatUser(u *model.User) *userResponse {
	r := &userResponse{
		ID:          u.ID,
		Name:        u.Name,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
	if u.RoleID.Valid {
		roleID := u.RoleID.UUID
		r.RoleID = &roleID
	}
	return r
}

func formatUsers(us []*model.User) []*userResponse {
	return lo.Map(us, func(u *model.User, _ int) *userResponse { return formatUser(u) })
}

type featureFlagResponse struct {
	Name      string    `json:"name"`
	Enabled   bool      `json:"enabled"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func formatFeatureFlags(fs []*model.FeatureFlag) []*featureFlagResponse {
	return lo.Map(fs, func(f *model.FeatureFlag, _ int) *featureFlagResponse {
		return &featureFlagResponse{Name: f.Name, Enabled: f.Enabled, UpdatedAt: f.UpdatedAt}
	})
}
