package migration

import (
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// v2 フィーチャーフラグテーブル
func v2() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "2",
		Migrate: func(db *gorm.DB) error {
			return db.AutoMigrate(&v2FeatureFlag{})
		},
	}
}

type v2FeatureFlag struct {
	Name      string    `gorm:"type:varchar(30);not null;primaryKey"`
	Enabled   bool      `gorm:"type:boolean;not null;default:false"`
	UpdatedAt time.Time `gorm:"precision:6"`
}

func (*v2FeatureFlag) TableName() string {
	return "feature_flags"
}
