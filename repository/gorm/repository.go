package gorm

import (
	"github.com/leandro-lugaresi/hub"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/citrusworks/shopadmin/migration"
	"github.com/citrusworks/shopadmin/repository"
)

// Repository リポジトリ実装
type Repository struct {
	db     *gorm.DB
	hub    *hub.Hub
	logger *zap.Logger
}

// NewGormRepository リポジトリ実装を初期化して生成します
//
// doMigrationがtrueの場合、マイグレーションを実行します。
// 戻り値のboolは空のデータベースを初期化したかどうかを表します。
func NewGormRepository(db *gorm.DB, hub *hub.Hub, logger *zap.Logger, doMigration bool) (repository.Repository, bool, error) {
	repo := &Repository{
		db:     db,
		hub:    hub,
		logger: logger.Named("repository"),
	}
	if doMigration {
		init, err := migration.Migrate(db)
		if err != nil {
			return nil, false, err
		}
		return repo, init, nil
	}
	return repo, false, nil
}

// WithExclusiveLock implements Repository interface.
func (repo *Repository) WithExclusiveLock(name string, fn func() error) error {
	var acquired int
	if err := repo.db.Raw("SELECT GET_LOCK(?, 60)", name).Scan(&acquired).Error; err != nil {
		return err
	}
	if acquired != 1 {
		return repository.ArgError("name", "failed to acquire lock: "+name)
	}
	defer func() {
		if err := repo.db.Exec("SELECT RELEASE_LOCK(?)", name).Error; err != nil {
			repo.logger.Warn("failed to release lock", zap.String("name", name), zap.Error(err))
		}
	}()
	return fn()
}
