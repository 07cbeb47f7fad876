package model

import (
	"time"

	"github.com/gofrs/uuid"
)

// Role ロール構造体
type Role struct {
	ID          uuid.UUID `gorm:"type:char(36);not null;primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null;unique" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	IsActive    bool      `gorm:"type:boolean;not null;default:true" json:"isActive"`
	// IsDefault 既定ロールフラグ
	// TODO 新規ユーザーへの自動割り当て処理が未実装。仕様確定までは保存するだけのフラグ
	IsDefault bool        `gorm:"type:boolean;not null;default:false" json:"isDefault"`
	Grants    []RoleGrant `gorm:"constraint:OnDelete:CASCADE;foreignKey:RoleID" json:"-"`
	CreatedAt time.Time   `gorm:"precision:6" json:"createdAt"`
	UpdatedAt time.Time   `gorm:"precision:6" json:"updatedAt"`
}

// TableName Role構造体のテーブル名
func (*Role) TableName() string {
	return "roles"
}

// RoleGrant ロール保有権構造体
//
// ロールとアクセス権の関連付けレコード。独立したライフサイクルは持たない。
type RoleGrant struct {
	RoleID  uuid.UUID `gorm:"type:char(36);not null;primaryKey"`
	RightID uuid.UUID `gorm:"type:char(36);not null;primaryKey"`
}

// TableName RoleGrant構造体のテーブル名
func (*RoleGrant) TableName() string {
	return "role_grants"
}
