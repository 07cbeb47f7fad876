package v3

import (
	"github.com/labstack/echo/v4"
	"github.com/leandro-lugaresi/hub"
	"go.uber.org/zap"

	"github.com/citrusworks/shopadmin/repository"
	"github.com/citrusworks/shopadmin/router/middlewares"
	"github.com/citrusworks/shopadmin/service/rbac"
	"github.com/citrusworks/shopadmin/service/rbac/right"
)

type Handlers struct {
	RBAC   rbac.RBAC
	Repo   repository.Repository
	Hub    *hub.Hub
	Logger *zap.Logger

	Version  string
	Revision string
}

// Setup APIルーティングを行います
func (h *Handlers) Setup(e *echo.Group) {
	// middleware preparation
	requires := middlewares.AccessControlMiddlewareGenerator(h.RBAC)

	api := e.Group("/v3", middlewares.UserAuthenticate(h.Repo))
	{
		apiRights := api.Group("/rights")
		{
			apiRights.GET("", h.GetRights, requires(right.RightIndex))
			apiRightsRID := apiRights.Group("/:rightID")
			{
				apiRightsRID.GET("", h.GetRight, requires(right.RightShow))
				apiRightsRID.PATCH("", h.EditRight, requires(right.RightUpdate))
				apiRightsRID.DELETE("", h.DeleteRight, requires(right.RightDestroy))
			}
		}
		apiRoles := api.Group("/roles")
		{
			apiRoles.GET("", h.GetRoles, requires(right.RoleIndex))
			apiRoles.POST("", h.CreateRole, requires(right.RoleCreate))
			apiRolesRID := apiRoles.Group("/:roleID")
			{
				apiRolesRID.GET("", h.GetRole, requires(right.RoleShow))
				apiRolesRID.PATCH("", h.EditRole, requires(right.RoleUpdate))
				apiRolesRID.DELETE("", h.DeleteRole, requires(right.RoleDestroy))
				apiRolesRID.PUT("/rights/:rightID", h.GrantRoleRight, requires(right.RoleGrantRight))
				apiRolesRID.DELETE("/rights/:rightID", h.RevokeRoleRight, requires(right.RoleRevokeRight))
			}
		}
		apiUsers := api.Group("/users")
		{
			apiUsers.POST("", h.CreateUser, requires(right.UserCreate))
			apiUsers.GET("/me/permissions", h.GetMyPermissions)
			apiUsersUID := apiUsers.Group("/:userID")
			{
				apiUsersUID.GET("", h.GetUser, requires(right.UserShow))
				apiUsersUID.PUT("/role", h.ChangeUserRole, requires(right.UserChangeRole))
			}
		}
		apiFeatures := api.Group("/features")
		{
			apiFeatures.GET("", h.GetFeatures, requires(right.FeatureIndex))
			apiFeatures.PATCH("", h.EditFeature, requires(right.FeatureUpdate))
		}
		api.GET("/version", h.GetVersion)
	}
}
