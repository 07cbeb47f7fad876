package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/leandro-lugaresi/hub"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/citrusworks/shopadmin/repository"
	"github.com/citrusworks/shopadmin/router/extension"
	"github.com/citrusworks/shopadmin/router/middlewares"
	v3 "github.com/citrusworks/shopadmin/router/v3"
	"github.com/citrusworks/shopadmin/service/rbac"
)

// Config ルーター設定
type Config struct {
	// Version サーバーバージョン
	Version string
	// Revision サーバーリビジョン
	Revision string
	// Development 開発モードかどうか
	Development bool
	// AccessLogging アクセスログを記録するかどうか
	AccessLogging bool
}

// Setup APIサーバーを構成します
func Setup(h *hub.Hub, repo repository.Repository, rb rbac.RBAC, logger *zap.Logger, config *Config) *echo.Echo {
	e := newEcho(logger, config)

	api := e.Group("/api")
	api.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	api.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, http.StatusText(http.StatusOK)) })

	handlers := &v3.Handlers{
		RBAC:     rb,
		Repo:     repo,
		Hub:      h,
		Logger:   logger.Named("router"),
		Version:  config.Version,
		Revision: config.Revision,
	}
	handlers.Setup(api)

	return e
}

func newEcho(logger *zap.Logger, config *Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = extension.ErrorHandler(logger.Named("router"))
	e.Binder = &extension.Binder{}

	// ミドルウェア設定
	e.Use(middlewares.ServerVersion(config.Version))
	e.Use(middlewares.RequestID())
	if config.AccessLogging {
		e.Use(middlewares.AccessLogging(logger.Named("access_log"), config.Development))
	}
	e.Use(middlewares.Recovery(logger.Named("router")))
	e.Use(middlewares.RequestCounter())

	return e
}
