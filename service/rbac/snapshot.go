package rbac

// GrantEntry クライアントへ渡す保有権1件分のキーペア
type GrantEntry struct {
	OperationKey string `json:"operationKey"`
	ShortKey     string `json:"shortKey"`
}

// Snapshot セッション開始時にクライアントへ渡す権限スナップショット
//
// UIの出し分け専用の参考情報であり、判定の権威はあくまでサーバー側の
// IsAuthorizedです。状態変更リクエストは毎回サーバーで再判定されます。
type Snapshot struct {
	Grants          []GrantEntry `json:"grants"`
	EnabledFeatures []string     `json:"enabledFeatures"`
}

// HasPermission 指定したキーに合致する保有権が含まれているかどうか
//
// keyは操作キー・短縮キーのどちらでも合致します。
func (s *Snapshot) HasPermission(key string) bool {
	for _, g := range s.Grants {
		if g.OperationKey == key || g.ShortKey == key {
			return true
		}
	}
	return false
}

// IsFeatureEnabled 指定したフィーチャーフラグが有効かどうか
func (s *Snapshot) IsFeatureEnabled(feature string) bool {
	for _, f := range s.EnabledFeatures {
		if f == feature {
			return true
		}
	}
	return false
}
