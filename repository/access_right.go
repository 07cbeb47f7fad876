package repository

import (
	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofrs/uuid"

	"github.com/citrusworks/shopadmin/model"
	"github.com/citrusworks/shopadmin/utils/optional"
	"github.com/citrusworks/shopadmin/utils/validator"
)

// DeclareAccessRightArgs アクセス権宣言引数
type DeclareAccessRightArgs struct {
	OperationKey     string
	ShortKey         string
	ShortDescription string
	Details          string
}

// Validate 引数を検証します
func (args DeclareAccessRightArgs) Validate() error {
	return vd.ValidateStruct(&args,
		vd.Field(&args.OperationKey, validator.OperationKeyRuleRequired...),
		vd.Field(&args.ShortKey, validator.ShortKeyRuleRequired...),
		vd.Field(&args.ShortDescription, validator.ShortDescriptionRuleRequired...),
		vd.Field(&args.Details, validator.DetailsRule...),
	)
}

// UpdateAccessRightArgs アクセス権更新引数
//
// キーは不変。更新できるのは説明文のみ(キーの変更は削除+再宣言として扱う)。
type UpdateAccessRightArgs struct {
	ShortDescription optional.String
	Details          optional.String
}

// AccessRightsQuery アクセス権一覧取得クエリ
type AccessRightsQuery struct {
	// Filter operationKey / shortKey / shortDescription の部分一致フィルタ
	Filter string
	// SortBy ソート対象カラム(空の場合はoperationKey)
	SortBy string
	// Descending 降順にするかどうか
	Descending bool
	// Page 1始まりのページ番号
	Page int
	// PerPage 1ページあたりの件数 省略時15 最大100
	PerPage int
}

// AccessRightRepository アクセス権レジストリリポジトリ
type AccessRightRepository interface {
	// DeclareAccessRight アクセス権を宣言します
	//
	// OperationKeyで冪等にupsertします。既存の場合は説明文を上書きし、既存のIDを返します。
	// 宣言済みのShortKeyを別のOperationKeyで使用しようとした場合、ArgumentErrorを返します。
	// 引数が不正な場合、ArgumentErrorを返します。
	// DBによるエラーを返すことがあります。
	DeclareAccessRight(args DeclareAccessRightArgs) (*model.AccessRight, error)
	// UpdateAccessRight 指定したアクセス権の説明文を更新します
	//
	// 成功した場合、nilを返します。
	// 存在しないアクセス権の場合、ErrNotFoundを返します。
	// idがuuid.Nilの場合、ErrNilIDを返します。
	// 引数が不正な場合、ArgumentErrorを返します。
	// DBによるエラーを返すことがあります。
	UpdateAccessRight(id uuid.UUID, args UpdateAccessRightArgs) error
	// GetAccessRight 指定したIDのアクセス権を取得します
	//
	// 存在しない場合、ErrNotFoundを返します。
	// idがuuid.Nilの場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	GetAccessRight(id uuid.UUID) (*model.AccessRight, error)
	// GetAccessRightByKey 指定したキーのアクセス権を取得します
	//
	// OperationKeyまたはShortKeyのどちらでも一致します。
	// 存在しない場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetAccessRightByKey(key string) (*model.AccessRight, error)
	// GetAccessRights アクセス権一覧と総件数を取得します
	//
	// DBによるエラーを返すことがあります。
	GetAccessRights(q AccessRightsQuery) ([]*model.AccessRight, int64, error)
	// DeleteAccessRight 指定したアクセス権を削除します
	//
	// 成功した場合、nilを返します。
	// 存在しないアクセス権の場合、ErrNotFoundを返します。
	// いずれかのロールが保有している場合、ErrStillGrantedを返します。
	// idがuuid.Nilの場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	DeleteAccessRight(id uuid.UUID) error
}
