package gorm

import (
	"github.com/gofrs/uuid"
	"github.com/leandro-lugaresi/hub"
	"gorm.io/gorm"

	"github.com/citrusworks/shopadmin/event"
	"github.com/citrusworks/shopadmin/model"
	"github.com/citrusworks/shopadmin/repository"
	"github.com/citrusworks/shopadmin/utils/gormutil"
)

// CreateUser implements UserRepository interface.
func (repo *Repository) CreateUser(args repository.CreateUserArgs) (*model.User, error) {
	if err := args.Validate(); err != nil {
		return nil, repository.ArgError("args", err.Error())
	}

	user := &model.User{
		ID:          uuid.Must(uuid.NewV4()),
		Name:        args.Name,
		DisplayName: args.DisplayName,
		RoleID:      args.RoleID,
	}
	if len(user.DisplayName) == 0 {
		user.DisplayName = user.Name
	}

	err := repo.db.Transaction(func(tx *gorm.DB) error {
		if args.RoleID.Valid {
			if exists, err := gormutil.RecordExists(tx, &model.Role{ID: args.RoleID.UUID}); err != nil {
				return err
			} else if !exists {
				return repository.ErrNotFound
			}
		}
		if err := tx.Create(user).Error; err != nil {
			if gormutil.IsMySQLDuplicatedRecordErr(err) {
				return repository.ErrAlreadyExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	repo.hub.Publish(hub.Message{
		Name: event.UserCreated,
		Fields: hub.Fields{
			"user_id": user.ID,
			"user":    user,
		},
	})
	return user, nil
}

// GetUser implements UserRepository interface.
func (repo *Repository) GetUser(id uuid.UUID) (*model.User, error) {
	if id == uuid.Nil {
		return nil, repository.ErrNilID
	}
	var user model.User
	if err := repo.db.First(&user, &model.User{ID: id}).Error; err != nil {
		return nil, convertError(err)
	}
	return &user, nil
}

// GetUserByName implements UserRepository interface.
func (repo *Repository) GetUserByName(name string) (*model.User, error) {
	if len(name) == 0 {
		return nil, repository.ErrNotFound
	}
	var user model.User
	if err := repo.db.First(&user, &model.User{Name: name}).Error; err != nil {
		return nil, convertError(err)
	}
	return &user, nil
}

// ChangeUserRole implements UserRepository interface.
func (repo *Repository) ChangeUserRole(userID uuid.UUID, roleID uuid.NullUUID) error {
	if userID == uuid.Nil {
		return repository.ErrNilID
	}

	var changed bool
	err := repo.db.Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.First(&user, &model.User{ID: userID}).Error; err != nil {
			return convertError(err)
		}
		if roleID.Valid {
			if exists, err := gormutil.RecordExists(tx, &model.Role{ID: roleID.UUID}); err != nil {
				return err
			} else if !exists {
				return repository.ErrNotFound
			}
		}
		if user.RoleID == roleID {
			return nil
		}
		changed = true
		return tx.Model(&user).Update("role_id", roleID).Error
	})
	if err != nil {
		return err
	}

	if changed {
		repo.hub.Publish(hub.Message{
			Name: event.UserRoleChanged,
			Fields: hub.Fields{
				"user_id": userID,
				"role_id": roleID,
			},
		})
	}
	return nil
}

// CountUsersByRole implements UserRepository interface.
func (repo *Repository) CountUsersByRole(roleID uuid.UUID) (int64, error) {
	if roleID == uuid.Nil {
		return 0, repository.ErrNilID
	}
	var count int64
	err := repo.db.Model(&model.User{}).Where("role_id = ?", roleID).Count(&count).Error
	return count, err
}
