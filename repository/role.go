package repository

import (
	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofrs/uuid"

	"github.com/citrusworks/shopadmin/model"
	"github.com/citrusworks/shopadmin/utils/optional"
	"github.com/citrusworks/shopadmin/utils/validator"
)

// CreateRoleArgs ロール作成引数
type CreateRoleArgs struct {
	Name        string
	Description string
	IsActive    bool
	IsDefault   bool
}

// Validate 引数を検証します
func (args CreateRoleArgs) Validate() error {
	return vd.ValidateStruct(&args,
		vd.Field(&args.Name, validator.RoleNameRuleRequired...),
		vd.Field(&args.Description, validator.RoleDescriptionRuleRequired...),
	)
}

// UpdateRoleArgs ロール更新引数
type UpdateRoleArgs struct {
	Name        optional.String
	Description optional.String
	IsActive    optional.Bool
	IsDefault   optional.Bool
}

// RolesQuery ロール一覧取得クエリ
type RolesQuery struct {
	// Filter name / description の部分一致フィルタ
	Filter string
	// SortBy ソート対象カラム(空の場合はname)
	SortBy string
	// Descending 降順にするかどうか
	Descending bool
	// Page 1始まりのページ番号
	Page int
	// PerPage 1ページあたりの件数 省略時15 最大100
	PerPage int
	// WithUsers 割り当てユーザーの一覧を含めるかどうか(件数は常に含まれる)
	WithUsers bool
}

// RoleDetail ロールと割り当て状況
type RoleDetail struct {
	model.Role
	// UserCount このロールを参照しているユーザー数
	UserCount int64
	// Users このロールを参照しているユーザー(RolesQuery.WithUsers指定時のみ)
	Users []*model.User
}

// RoleRepository ロールストアリポジトリ
type RoleRepository interface {
	// CreateRole ロールを作成します
	//
	// 成功した場合、作成したロールとnilを返します。
	// Nameが重複している場合、ErrAlreadyExistsを返します。
	// 引数が不正な場合、ArgumentErrorを返します。
	// DBによるエラーを返すことがあります。
	CreateRole(args CreateRoleArgs) (*model.Role, error)
	// UpdateRole 指定したロールを更新します
	//
	// 成功した場合、nilを返します。
	// 存在しないロールの場合、ErrNotFoundを返します。
	// Nameが重複している場合、ErrAlreadyExistsを返します。
	// idがuuid.Nilの場合、ErrNilIDを返します。
	// 引数が不正な場合、ArgumentErrorを返します。
	// DBによるエラーを返すことがあります。
	UpdateRole(id uuid.UUID, args UpdateRoleArgs) error
	// GetRole 指定したIDのロールを保有権付きで取得します
	//
	// 存在しない場合、ErrNotFoundを返します。
	// idがuuid.Nilの場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	GetRole(id uuid.UUID) (*model.Role, error)
	// GetRoleByName 指定した名前のロールを保有権付きで取得します
	//
	// 存在しない場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetRoleByName(name string) (*model.Role, error)
	// GetRoles ロール一覧と総件数を取得します
	//
	// 各ロールには割り当てユーザー数が付与されます。
	// DBによるエラーを返すことがあります。
	GetRoles(q RolesQuery) ([]*RoleDetail, int64, error)
	// DeleteRole 指定したロールと保有権を削除します
	//
	// ユーザー数の確認と削除は同一トランザクションで行われます。
	// 成功した場合、nilを返します。
	// 存在しないロールの場合、ErrNotFoundを返します。
	// ロールを参照しているユーザーが存在する場合、ErrRoleInUseを返します。
	// idがuuid.Nilの場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	DeleteRole(id uuid.UUID) error
	// GrantRight ロールにアクセス権を付与します 冪等です
	//
	// 既に保有している場合は何もしません。
	// ロールまたはアクセス権が存在しない場合、ErrNotFoundを返します。
	// いずれかのIDがuuid.Nilの場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	GrantRight(roleID, rightID uuid.UUID) error
	// GrantRights ロールに複数のアクセス権を一括付与します 冪等です
	//
	// 保有していない分のみを1つのトランザクションで追加します。
	// ロールが存在しない場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GrantRights(roleID uuid.UUID, rightIDs []uuid.UUID) error
	// RevokeRight ロールからアクセス権を剥奪します 冪等です
	//
	// 保有していない場合は何もしません。
	// ロールまたはアクセス権が存在しない場合、ErrNotFoundを返します。
	// いずれかのIDがuuid.Nilの場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	RevokeRight(roleID, rightID uuid.UUID) error
	// GetGrantedRights 指定したロールが保有するアクセス権一覧を取得します
	//
	// 存在しないロールの場合、ErrNotFoundを返します。
	// idがuuid.Nilの場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	GetGrantedRights(roleID uuid.UUID) ([]*model.AccessRight, error)
}
