package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/leandro-lugaresi/hub"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/citrusworks/shopadmin/repository/gorm"
	"github.com/citrusworks/shopadmin/router"
	"github.com/citrusworks/shopadmin/service/rbac"
)

// serveCommand APIサーバー起動コマンド
func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve shopadmin API",
		Run: func(cmd *cobra.Command, args []string) {
			// Logger
			logger := getLogger()
			defer logger.Sync()

			// Message Hub
			h := hub.New()

			// Database
			engine, err := c.getDatabase(logger.Named("db"))
			if err != nil {
				logger.Fatal("failed to connect database", zap.Error(err))
			}
			db, err := engine.DB()
			if err != nil {
				logger.Fatal("failed to get *sql.DB", zap.Error(err))
			}
			defer db.Close()

			// Repository
			repo, init, err := gorm.NewGormRepository(engine, h, logger, true)
			if err != nil {
				logger.Fatal("failed to initialize repository", zap.Error(err))
			}
			if init {
				logger.Info("database was initialized")
			}

			// RBAC
			rb := rbac.New(repo, h, logger)

			// 権利カタログとビルトインロールをプロセス起動毎に再同期する
			if err := rb.Sync(context.Background()); err != nil {
				logger.Fatal("failed to sync rbac", zap.Error(err))
			}

			// Router
			e := router.Setup(h, repo, rb, logger, &router.Config{
				Version:       Version,
				Revision:      Revision,
				Development:   c.DevMode,
				AccessLogging: c.AccessLog.Enabled,
			})

			go func() {
				if err := e.Start(fmt.Sprintf(":%d", c.Port)); err != nil {
					logger.Info("shutting down the server")
				}
			}()

			logger.Info("shopadmin started", zap.String("version", Version), zap.String("revision", Revision))

			waitSIGINT()
			logger.Info("shopadmin shutting down...")

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := e.Shutdown(ctx); err != nil {
				logger.Warn("abnormal shutdown", zap.Error(err))
			}
			logger.Info("shopadmin shutdown")
		},
	}
}
