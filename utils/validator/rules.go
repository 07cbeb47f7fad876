package validator

import (
	"regexp"

	vd "github.com/go-ozzo/ozzo-validation/v4"
)

// OperationKeyRule 操作キーバリデーションルール
var OperationKeyRule = []vd.Rule{
	vd.Match(regexp.MustCompile(`^[a-z][a-zA-Z0-9]*(\.[a-zA-Z][a-zA-Z0-9]*)+$`)).Error("must be dot-separated segments like \"api.admin.coupon.destroy\""),
	vd.RuneLength(5, 200),
}

// OperationKeyRuleRequired 操作キーバリデーションルール with Required
var OperationKeyRuleRequired = append([]vd.Rule{
	vd.Required,
}, OperationKeyRule...)

// ShortKeyRule アクセス権短縮キーバリデーションルール
var ShortKeyRule = []vd.Rule{
	vd.Match(regexp.MustCompile(`^[a-z][a-z0-9_]*$`)).Error("must contain [a-z0-9_] only"),
	vd.RuneLength(5, 200),
}

// ShortKeyRuleRequired アクセス権短縮キーバリデーションルール with Required
var ShortKeyRuleRequired = append([]vd.Rule{
	vd.Required,
}, ShortKeyRule...)

// ShortDescriptionRule アクセス権表示名バリデーションルール
var ShortDescriptionRule = []vd.Rule{
	vd.RuneLength(5, 300),
}

// ShortDescriptionRuleRequired アクセス権表示名バリデーションルール with Required
var ShortDescriptionRuleRequired = append([]vd.Rule{
	vd.Required,
}, ShortDescriptionRule...)

// DetailsRule アクセス権詳細説明バリデーションルール(任意項目)
var DetailsRule = []vd.Rule{
	vd.RuneLength(10, 1000),
}

// RoleNameRule ロール名バリデーションルール
var RoleNameRule = []vd.Rule{
	vd.RuneLength(5, 100),
}

// RoleNameRuleRequired ロール名バリデーションルール with Required
var RoleNameRuleRequired = append([]vd.Rule{
	vd.Required,
}, RoleNameRule...)

// RoleDescriptionRule ロール説明バリデーションルール
var RoleDescriptionRule = []vd.Rule{
	vd.RuneLength(5, 1000),
}

// RoleDescriptionRuleRequired ロール説明バリデーションルール with Required
var RoleDescriptionRuleRequired = append([]vd.Rule{
	vd.Required,
}, RoleDescriptionRule...)

// UserNameRule ユーザー名バリデーションルール
var UserNameRule = []vd.Rule{
	vd.Match(regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)).Error("must contain [a-zA-Z0-9_-] only"),
	vd.RuneLength(1, 32),
}

// UserNameRuleRequired ユーザー名バリデーションルール with Required
var UserNameRuleRequired = append([]vd.Rule{
	vd.Required,
}, UserNameRule...)

// FeatureNameRule フィーチャーフラグ名バリデーションルール
var FeatureNameRule = []vd.Rule{
	vd.Match(regexp.MustCompile(`^[a-z][a-z0-9_]*$`)).Error("must contain [a-z0-9_] only"),
	vd.RuneLength(1, 30),
}

// FeatureNameRuleRequired フィーチャーフラグ名バリデーションルール with Required
var FeatureNameRuleRequired = append([]vd.Rule{
	vd.Required,
}, FeatureNameRule...)
