package validator

import (
	vd "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidateVar 単一の値をルールに従って検証します
func ValidateVar(value interface{}, rules ...vd.Rule) error {
	return vd.Validate(value, rules...)
}
