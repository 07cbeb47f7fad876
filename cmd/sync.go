package cmd

import (
	"context"

	"github.com/leandro-lugaresi/hub"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/citrusworks/shopadmin/repository/gorm"
	"github.com/citrusworks/shopadmin/service/rbac"
)

// syncCommand 権利レジストリ同期コマンド
//
// サーバーを起動せずに権利カタログの宣言とビルトインロールの付与だけを行います。
func syncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Declare the right catalog and grant built-in roles",
		Run: func(cmd *cobra.Command, args []string) {
			logger := getLogger()
			defer logger.Sync()

			engine, err := c.getDatabase(logger.Named("db"))
			if err != nil {
				logger.Fatal("failed to connect database", zap.Error(err))
			}
			db, err := engine.DB()
			if err != nil {
				logger.Fatal("failed to get *sql.DB", zap.Error(err))
			}
			defer db.Close()

			repo, _, err := gorm.NewGormRepository(engine, hub.New(), logger, true)
			if err != nil {
				logger.Fatal("failed to initialize repository", zap.Error(err))
			}

			rb := rbac.New(repo, hub.New(), logger)
			if err := rb.Sync(context.Background()); err != nil {
				logger.Fatal("failed to sync rbac", zap.Error(err))
			}
			logger.Info("sync completed")
		},
	}
}
