package event

const (
	// AccessRightUpdated アクセス権の定義が更新された
	// 	Fields:
	// 		right_id: uuid.UUID
	// 		operation_key: string
	AccessRightUpdated = "access_right.updated"
	// AccessRightDeleted アクセス権の定義が削除された
	// 	Fields:
	// 		right_id: uuid.UUID
	// 		operation_key: string
	AccessRightDeleted = "access_right.deleted"

	// RoleCreated ロールが作成された
	// 	Fields:
	// 		role_id: uuid.UUID
	// 		role: *model.Role
	RoleCreated = "role.created"
	// RoleUpdated ロールまたはロールの保有権が更新された
	// 	Fields:
	// 		role_id: uuid.UUID
	RoleUpdated = "role.updated"
	// RoleDeleted ロールが削除された
	// 	Fields:
	// 		role_id: uuid.UUID
	RoleDeleted = "role.deleted"

	// UserCreated ユーザーが追加された
	// 	Fields:
	// 		user_id: uuid.UUID
	// 		user: *model.User
	UserCreated = "user.created"
	// UserRoleChanged ユーザーのロール割り当てが変更された
	// 	Fields:
	// 		user_id: uuid.UUID
	UserRoleChanged = "user.role_changed"

	// FeatureFlagUpdated サイト全体のフィーチャーフラグが変更された
	// 	Fields:
	// 		name: string
	// 		enabled: bool
	FeatureFlagUpdated = "feature_flag.updated"
)
