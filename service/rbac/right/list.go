package right

import (
	"strings"

	"github.com/samber/lo"
)

// Definitions 全ての宣言済みアクセス権を返します
//
// シードプロトコルはこのリストをそのままレジストリに投入します。
func Definitions() []Definition {
	defs := make([]Definition, 0, len(catalogDefs)+len(commerceDefs)+len(contentDefs)+len(systemDefs))
	defs = append(defs, catalogDefs...)
	defs = append(defs, commerceDefs...)
	defs = append(defs, contentDefs...)
	defs = append(defs, systemDefs...)
	return defs
}

// List 全ての宣言済み操作キーを返します
func List() []Key {
	return lo.Map(Definitions(), func(d Definition, _ int) Key { return d.OperationKey })
}

// IsDestructive 破壊的操作の命名規約に合致するかどうか
//
// 末尾セグメントがdestroyまたはforceDestroyの操作キーが対象。
func (k Key) IsDestructive() bool {
	s := string(k)
	return strings.HasSuffix(s, ".destroy") || strings.HasSuffix(s, ".forceDestroy")
}
