package repository

import (
	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofrs/uuid"

	"github.com/citrusworks/shopadmin/model"
	"github.com/citrusworks/shopadmin/utils/validator"
)

// CreateUserArgs ユーザー作成引数
type CreateUserArgs struct {
	Name        string
	DisplayName string
	RoleID      uuid.NullUUID
}

// Validate 引数を検証します
func (args CreateUserArgs) Validate() error {
	return vd.ValidateStruct(&args,
		vd.Field(&args.Name, validator.UserNameRuleRequired...),
		vd.Field(&args.DisplayName, vd.RuneLength(0, 64)),
	)
}

// UserRepository ユーザーリポジトリ
//
// ユーザー管理の本体は外部コラボレータ。ここではロール解決と削除ガードに
// 必要な最小限の参照のみを扱う。
type UserRepository interface {
	// CreateUser ユーザーを作成します
	//
	// Nameが重複している場合、ErrAlreadyExistsを返します。
	// 指定したロールが存在しない場合、ErrNotFoundを返します。
	// 引数が不正な場合、ArgumentErrorを返します。
	// DBによるエラーを返すことがあります。
	CreateUser(args CreateUserArgs) (*model.User, error)
	// GetUser 指定したIDのユーザーを取得します
	//
	// 存在しない場合、ErrNotFoundを返します。
	// idがuuid.Nilの場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	GetUser(id uuid.UUID) (*model.User, error)
	// GetUserByName 指定した名前のユーザーを取得します
	//
	// 存在しない場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetUserByName(name string) (*model.User, error)
	// ChangeUserRole ユーザーのロール割り当てを変更します
	//
	// roleID.Validがfalseの場合、割り当てを解除します。
	// ユーザーまたはロールが存在しない場合、ErrNotFoundを返します。
	// userIDがuuid.Nilの場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	ChangeUserRole(userID uuid.UUID, roleID uuid.NullUUID) error
	// CountUsersByRole 指定したロールを参照しているユーザー数を取得します
	//
	// DBによるエラーを返すことがあります。
	CountUsersByRole(roleID uuid.UUID) (int64, error)
}
