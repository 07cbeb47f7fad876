package role

import (
	"github.com/citrusworks/shopadmin/service/rbac/right"
)

const (
	// Admin 全権ロール
	Admin = "Admin"
	// Salesperson 販売担当ロール
	Salesperson = "Salesperson"
)

// BootstrapRole シードプロトコルが投入する初期ロール
type BootstrapRole struct {
	Name        string
	Description string
	// Includes 宣言済みアクセス権をこのロールに付与するかどうか
	Includes func(k right.Key) bool
}

// BootstrapRoles 全ての初期ロールを返します
func BootstrapRoles() []BootstrapRole {
	return []BootstrapRole{
		{
			Name:        Admin,
			Description: "Full access to every back-office operation.",
			Includes: func(right.Key) bool {
				return true
			},
		},
		{
			Name:        Salesperson,
			Description: "Day-to-day operations. Cannot perform destructive operations.",
			Includes: func(k right.Key) bool {
				return !k.IsDestructive()
			},
		},
	}
}
