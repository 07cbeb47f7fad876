package right

const (
	// UserIndex ユーザー一覧取得権限
	UserIndex = Key("api.admin.user.index")
	// UserShow ユーザー取得権限
	UserShow = Key("api.admin.user.show")
	// UserCreate ユーザー作成権限
	UserCreate = Key("api.admin.user.create")
	// UserUpdate ユーザー更新権限
	UserUpdate = Key("api.admin.user.update")
	// UserChangeRole ユーザーロール変更権限
	UserChangeRole = Key("api.admin.user.changeRole")

	// RoleIndex ロール一覧取得権限
	RoleIndex = Key("api.admin.role.index")
	// RoleShow ロール取得権限
	RoleShow = Key("api.admin.role.show")
	// RoleCreate ロール作成権限
	RoleCreate = Key("api.admin.role.create")
	// RoleUpdate ロール更新権限
	RoleUpdate = Key("api.admin.role.update")
	// RoleDestroy ロール削除権限
	RoleDestroy = Key("api.admin.role.destroy")
	// RoleGrantRight ロールへの権限付与権限
	RoleGrantRight = Key("api.admin.role.grant")
	// RoleRevokeRight ロールからの権限剥奪権限
	RoleRevokeRight = Key("api.admin.role.revoke")

	// RightIndex アクセス権一覧取得権限
	RightIndex = Key("api.admin.right.index")
	// RightShow アクセス権取得権限
	RightShow = Key("api.admin.right.show")
	// RightUpdate アクセス権更新権限
	RightUpdate = Key("api.admin.right.update")
	// RightDestroy アクセス権削除権限
	RightDestroy = Key("api.admin.right.destroy")

	// FeatureIndex フィーチャーフラグ一覧取得権限
	FeatureIndex = Key("api.admin.feature.index")
	// FeatureUpdate フィーチャーフラグ更新権限
	FeatureUpdate = Key("api.admin.feature.update")
)

var systemDefs = []Definition{
	{UserIndex, "user_list", "List back-office users", ""},
	{UserShow, "user_view", "View back-office user", ""},
	{UserCreate, "user_create", "Create back-office user", ""},
	{UserUpdate, "user_edit", "Edit back-office user", ""},
	{UserChangeRole, "user_change_role", "Change a user's role", "Reassigns the user to another role. Takes effect on the user's next request."},
	{RoleIndex, "role_list", "List roles", ""},
	{RoleShow, "role_view", "View role", ""},
	{RoleCreate, "role_create", "Create role", ""},
	{RoleUpdate, "role_edit", "Edit role", ""},
	{RoleDestroy, "role_delete", "Delete role", "Only roles with no assigned users can be deleted."},
	{RoleGrantRight, "role_grant", "Grant a right to a role", ""},
	{RoleRevokeRight, "role_revoke", "Revoke a right from a role", ""},
	{RightIndex, "right_list", "List access rights", ""},
	{RightShow, "right_view", "View access right", ""},
	{RightUpdate, "right_edit", "Edit access right descriptions", ""},
	{RightDestroy, "right_delete", "Delete access right", "Only rights no role holds can be deleted. Seeded rights reappear on the next sync."},
	{FeatureIndex, "feature_list", "List feature flags", ""},
	{FeatureUpdate, "feature_edit", "Toggle feature flags", ""},
}
