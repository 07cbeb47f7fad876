package model

import (
	"time"

	"github.com/gofrs/uuid"
)

// AccessRight アクセス権構造体
//
// 保護対象の管理操作1件(ルート1本)と1:1に対応する。
// OperationKeyとShortKeyはそれぞれ全体で一意。
type AccessRight struct {
	ID               uuid.UUID `gorm:"type:char(36);not null;primaryKey" json:"id"`
	OperationKey     string    `gorm:"type:varchar(200);not null;unique" json:"operationKey"`
	ShortKey         string    `gorm:"type:varchar(200);not null;unique" json:"shortKey"`
	ShortDescription string    `gorm:"type:varchar(300);not null" json:"shortDescription"`
	Details          string    `gorm:"type:text" json:"details"`
	CreatedAt        time.Time `gorm:"precision:6" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"precision:6" json:"updatedAt"`
}

// TableName AccessRight構造体のテーブル名
func (*AccessRight) TableName() string {
	return "access_rights"
}
