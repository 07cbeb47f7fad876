package model

import (
	"time"

	"github.com/gofrs/uuid"
)

// User 管理ユーザー構造体
//
// 認証は外部のアイデンティティ基盤が行う。本体が持つのはロール割り当てのみで、
// 1ユーザーは高々1つのロールを参照する。
type User struct {
	ID          uuid.UUID     `gorm:"type:char(36);not null;primaryKey" json:"id"`
	Name        string        `gorm:"type:varchar(32);not null;unique" json:"name"`
	DisplayName string        `gorm:"type:varchar(64);not null" json:"displayName"`
	RoleID      uuid.NullUUID `gorm:"type:char(36)" json:"roleId"`
	CreatedAt   time.Time     `gorm:"precision:6" json:"createdAt"`
	UpdatedAt   time.Time     `gorm:"precision:6" json:"updatedAt"`
}

// TableName User構造体のテーブル名
func (*User) TableName() string {
	return "users"
}
