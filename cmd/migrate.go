package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/citrusworks/shopadmin/migration"
)

// migrateCommand データベースマイグレーションコマンド
func migrateCommand() *cobra.Command {
	var dropAll bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Execute database schema migration only",
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

			if dropAll {
				logger.Info("dropping all tables...")
				if err := migration.DropAll(engine); err != nil {
					logger.Fatal("failed to drop all tables", zap.Error(err))
				}
			}

			init, err := migration.Migrate(engine)
			if err != nil {
				logger.Fatal("failed to migrate", zap.Error(err))
			}
			if init {
				logger.Info("database was initialized")
			}
			logger.Info("migration completed")
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&dropAll, "reset", false, "drop all tables before migration")

	return cmd
}
