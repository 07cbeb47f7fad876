package repository

// Repository データリポジトリ
type Repository interface {
	// WithExclusiveLock 指定した名前の排他ロックを保持した状態でfnを実行します
	//
	// シードプロトコルのように複数プロセスが競合しうる処理に使用します。
	// ロックの獲得に失敗した場合、fnを実行せずエラーを返します。
	WithExclusiveLock(name string, fn func() error) error
	AccessRightRepository
	RoleRepository
	UserRepository
	FeatureFlagRepository
}
