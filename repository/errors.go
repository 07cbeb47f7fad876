package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNilID 汎用エラー 引数のIDがNilです
	ErrNilID = errors.New("nil id")
	// ErrNotFound 汎用エラー 見つかりません
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists 汎用エラー 既に存在しています
	ErrAlreadyExists = errors.New("already exists")
	// ErrRoleInUse ロールを参照しているユーザーが存在するため削除できません
	ErrRoleInUse = errors.New("role is assigned to one or more users")
	// ErrStillGranted アクセス権を保有しているロールが存在するため削除できません
	ErrStillGranted = errors.New("access right is still granted to one or more roles")
)

// ArgumentError 引数エラー
type ArgumentError struct {
	FieldName string
	Message   string
}

// Error implements error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.FieldName, e.Message)
}

// ArgError 引数エラーを発生させます
func ArgError(field, message string) *ArgumentError {
	return &ArgumentError{FieldName: field, Message: message}
}

// IsArgError 引数エラーかどうか
func IsArgError(err error) bool {
	var target *ArgumentError
	return errors.As(err, &target)
}
