package repository

import "github.com/citrusworks/shopadmin/model"

// FeatureFlagRepository サイト全体のフィーチャーフラグリポジトリ
type FeatureFlagRepository interface {
	// GetFeatureFlags フィーチャーフラグを全て取得します
	//
	// DBによるエラーを返すことがあります。
	GetFeatureFlags() ([]*model.FeatureFlag, error)
	// GetEnabledFeatures 有効なフィーチャーフラグの名前一覧を取得します
	//
	// DBによるエラーを返すことがあります。
	GetEnabledFeatures() ([]string, error)
	// SetFeatureFlag フィーチャーフラグを設定します(upsert)
	//
	// 名前が不正な場合、ArgumentErrorを返します。
	// DBによるエラーを返すことがあります。
	SetFeatureFlag(name string, enabled bool) error
}
