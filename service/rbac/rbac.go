package rbac

import (
	"context"

	"github.com/gofrs/uuid"
)

// RBAC アクセス制御サービスインターフェース
type RBAC interface {
	// IsAuthorized 指定したロールで指定した操作が許可されているかどうか
	//
	// keyには操作キーまたは短縮キーを指定できます。ロールが存在しない場合や
	// 非アクティブな場合、保有権が無い場合はfalseを返します。
	// 判定材料の取得に失敗した場合は拒否扱いとしてエラーを返します。
	// 成功した戻り値はERR系エラーを伴いません。
	IsAuthorized(ctx context.Context, roleID uuid.UUID, key string) (bool, error)
	// GrantRight 指定したロールに指定したアクセス権を付与します
	//
	// 冪等です。どちらかのIDが存在しない場合、repository.ErrNotFoundを返します。
	GrantRight(ctx context.Context, roleID, rightID uuid.UUID) error
	// RevokeRight 指定したロールから指定したアクセス権を剥奪します
	//
	// 冪等です。どちらかのIDが存在しない場合、repository.ErrNotFoundを返します。
	RevokeRight(ctx context.Context, roleID, rightID uuid.UUID) error
	// GetGrants 指定したロールが保有するアクセス権のキーペアを返します
	GetGrants(ctx context.Context, roleID uuid.UUID) ([]GrantEntry, error)
	// MakeSnapshot セッション開始時にクライアントへ渡す権限スナップショットを生成します
	//
	// roleIDが無効値(ロール未割り当てユーザー)の場合、保有権は空になります。
	MakeSnapshot(ctx context.Context, roleID uuid.NullUUID) (*Snapshot, error)
	// Sync 宣言済みアクセス権と初期ロールをデータベースに同期します
	//
	// 冪等で、排他ロック下で実行されるため多重起動と競合しません。
	Sync(ctx context.Context) error
}
