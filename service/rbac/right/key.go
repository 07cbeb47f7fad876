package right

import (
	"fmt"

	"github.com/citrusworks/shopadmin/utils/validator"
)

// Key アクセス権操作キー
//
// 保護対象のHTTP操作と1:1に対応する `<scope>.<area>.<resource>.<action>` 形式の
// 識別子。生文字列の取り回しによるタイポを防ぐため、外部から受け取る値は
// 必ずParseKeyを通すこと。
type Key string

// ParseKey 文字列を検証して操作キーに変換します
func ParseKey(s string) (Key, error) {
	if err := validator.ValidateVar(s, validator.OperationKeyRuleRequired...); err != nil {
		return "", fmt.Errorf("invalid operation key %q: %w", s, err)
	}
	return Key(s), nil
}

// Name 操作キー文字列
func (k Key) Name() string {
	return string(k)
}

// Definition 宣言済みアクセス権
//
// シードプロトコルが消費する (operationKey, shortKey, shortDescription, details)
// のタプル。
type Definition struct {
	OperationKey     Key
	ShortKey         string
	ShortDescription string
	Details          string
}
