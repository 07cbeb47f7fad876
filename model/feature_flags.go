package model

import "time"

// FeatureFlag サイト全体のフィーチャーフラグ構造体
type FeatureFlag struct {
	Name      string    `gorm:"type:varchar(30);not null;primaryKey" json:"name"`
	Enabled   bool      `gorm:"type:boolean;not null;default:false" json:"enabled"`
	UpdatedAt time.Time `gorm:"precision:6" json:"updatedAt"`
}

// TableName FeatureFlag構造体のテーブル名
func (*FeatureFlag) TableName() string {
	return "feature_flags"
}
