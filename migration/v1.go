package migration

import (
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// v1 アクセス権・ロール・保有権・ユーザーテーブル
func v1() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "1",
		Migrate: func(db *gorm.DB) error {
			return db.AutoMigrate(
				&v1RoleGrant{},
				&v1AccessRight{},
				&v1Role{},
				&v1User{},
			)
		},
	}
}

type v1AccessRight struct {
	ID               uuid.UUID `gorm:"type:char(36);not null;primaryKey"`
	OperationKey     string    `gorm:"type:varchar(200);not null;unique"`
	ShortKey         string    `gorm:"type:varchar(200);not null;unique"`
	ShortDescription string    `gorm:"type:varchar(300);not null"`
	Details          string    `gorm:"type:text;not null"`
	CreatedAt        time.Time `gorm:"precision:6"`
	UpdatedAt        time.Time `gorm:"precision:6"`
}

func (*v1AccessRight) TableName() string {
	return "access_rights"
}

type v1Role struct {
	ID          uuid.UUID `gorm:"type:char(36);not null;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null;unique"`
	Description string    `gorm:"type:text;not null"`
	IsActive    bool      `gorm:"type:boolean;not null;default:true"`
	IsDefault   bool      `gorm:"type:boolean;not null;default:false"`
	CreatedAt   time.Time `gorm:"precision:6"`
	UpdatedAt   time.Time `gorm:"precision:6"`
}

func (*v1Role) TableName() string {
	return "roles"
}

type v1RoleGrant struct {
	RoleID  uuid.UUID `gorm:"type:char(36);not null;primaryKey"`
	RightID uuid.UUID `gorm:"type:char(36);not null;primaryKey"`
}

func (*v1RoleGrant) TableName() string {
	return "role_grants"
}

type v1User struct {
	ID          uuid.UUID     `gorm:"type:char(36);not null;primaryKey"`
	Name        string        `gorm:"type:varchar(32);not null;unique"`
	DisplayName string        `gorm:"type:varchar(64);not null"`
	RoleID      uuid.NullUUID `gorm:"type:char(36)"`
	CreatedAt   time.Time     `gorm:"precision:6"`
	UpdatedAt   time.Time     `gorm:"precision:6"`
}

func (*v1User) TableName() string {
	return "users"
}
