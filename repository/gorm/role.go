package gorm

import (
	"github.com/gofrs/uuid"
	"github.com/leandro-lugaresi/hub"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/citrusworks/shopadmin/event"
	"github.com/citrusworks/shopadmin/model"
	"github.com/citrusworks/shopadmin/repository"
	"github.com/citrusworks/shopadmin/utils/gormutil"
	"github.com/citrusworks/shopadmin/utils/validator"
)

// ロール一覧のソート可能カラム
var roleSortColumns = map[string]string{
	"":            "name",
	"name":        "name",
	"description": "description",
	"isActive":    "is_active",
	"isDefault":   "is_default",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
}

// CreateRole implements RoleRepository interface.
func (repo *Repository) CreateRole(args repository.CreateRoleArgs) (*model.Role, error) {
	if err := args.Validate(); err != nil {
		return nil, repository.ArgError("args", err.Error())
	}

	role := &model.Role{
		ID:          uuid.Must(uuid.NewV4()),
		Name:        args.Name,
		Description: args.Description,
		IsActive:    args.IsActive,
		IsDefault:   args.IsDefault,
	}
	err := repo.db.Transaction(func(tx *gorm.DB) error {
		if exists, err := gormutil.RecordExists(tx, &model.Role{Name: args.Name}); err != nil {
			return err
		} else if exists {
			return repository.ErrAlreadyExists
		}
		return tx.Create(role).Error
	})
	if err != nil {
		return nil, err
	}

	repo.hub.Publish(hub.Message{
		Name: event.RoleCreated,
		Fields: hub.Fields{
			"role_id": role.ID,
			"role":    role,
		},
	})
	return role, nil
}

// UpdateRole implements RoleRepository interface.
func (repo *Repository) UpdateRole(id uuid.UUID, args repository.UpdateRoleArgs) error {
	if id == uuid.Nil {
		return repository.ErrNilID
	}

	var role model.Role
	changes := map[string]interface{}{}
	err := repo.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&role, &model.Role{ID: id}).Error; err != nil {
			return convertError(err)
		}

		if args.Name.Valid && args.Name.String != role.Name {
			if err := validator.ValidateVar(args.Name.String, validator.RoleNameRuleRequired...); err != nil {
				return repository.ArgError("args.Name", err.Error())
			}
			if exists, err := gormutil.RecordExists(tx, &model.Role{Name: args.Name.String}); err != nil {
				return err
			} else if exists {
				return repository.ErrAlreadyExists
			}
			changes["name"] = args.Name.String
		}
		if args.Description.Valid {
			if err := validator.ValidateVar(args.Description.String, validator.RoleDescriptionRuleRequired...); err != nil {
				return repository.ArgError("args.Description", err.Error())
			}
			changes["description"] = args.Description.String
		}
		if args.IsActive.Valid {
			changes["is_active"] = args.IsActive.Bool
		}
		if args.IsDefault.Valid {
			changes["is_default"] = args.IsDefault.Bool
		}

		if len(changes) > 0 {
			return tx.Model(&role).Updates(changes).Error
		}
		return nil
	})
	if err != nil {
		return err
	}

	if len(changes) > 0 {
		repo.hub.Publish(hub.Message{
			Name: event.RoleUpdated,
			Fields: hub.Fields{
				"role_id": role.ID,
			},
		})
	}
	return nil
}

// GetRole implements RoleRepository interface.
func (repo *Repository) GetRole(id uuid.UUID) (*model.Role, error) {
	if id == uuid.Nil {
		return nil, repository.ErrNilID
	}
	var role model.Role
	if err := repo.db.Preload("Grants").First(&role, &model.Role{ID: id}).Error; err != nil {
		return nil, convertError(err)
	}
	return &role, nil
}

// GetRoleByName implements RoleRepository interface.
func (repo *Repository) GetRoleByName(name string) (*model.Role, error) {
	if len(name) == 0 {
		return nil, repository.ErrNotFound
	}
	var role model.Role
	if err := repo.db.Preload("Grants").First(&role, &model.Role{Name: name}).Error; err != nil {
		return nil, convertError(err)
	}
	return &role, nil
}

// GetRoles implements RoleRepository interface.
func (repo *Repository) GetRoles(q repository.RolesQuery) ([]*repository.RoleDetail, int64, error) {
	column, ok := roleSortColumns[q.SortBy]
	if !ok {
		return nil, 0, repository.ArgError("sort", "unknown sort column: "+q.SortBy)
	}

	query := func() *gorm.DB {
		tx := repo.db.Model(&model.Role{})
		if len(q.Filter) > 0 {
			pattern := "%" + q.Filter + "%"
			tx = tx.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
		}
		return tx
	}

	total, err := gormutil.Count(query())
	if err != nil {
		return nil, 0, err
	}

	limit, offset := pageToLimitAndOffset(q.Page, q.PerPage)
	order := column
	if q.Descending {
		order += " DESC"
	}

	roles := make([]*model.Role, 0)
	if err := query().Preload("Grants").Order(order).Scopes(gormutil.LimitAndOffset(limit, offset)).Find(&roles).Error; err != nil {
		return nil, 0, err
	}

	result := make([]*repository.RoleDetail, len(roles))
	for i, role := range roles {
		detail := &repository.RoleDetail{Role: *role}
		if err := repo.db.Model(&model.User{}).Where("role_id = ?", role.ID).Count(&detail.UserCount).Error; err != nil {
			return nil, 0, err
		}
		if q.WithUsers {
			detail.Users = make([]*model.User, 0)
			if err := repo.db.Where("role_id = ?", role.ID).Find(&detail.Users).Error; err != nil {
				return nil, 0, err
			}
		}
		result[i] = detail
	}
	return result, total, nil
}

// DeleteRole implements RoleRepository interface.
func (repo *Repository) DeleteRole(id uuid.UUID) error {
	if id == uuid.Nil {
		return repository.ErrNilID
	}

	err := repo.db.Transaction(func(tx *gorm.DB) error {
		var role model.Role
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&role, &model.Role{ID: id}).Error; err != nil {
			return convertError(err)
		}
		// 割り当て確認と削除を同一トランザクションで行う
		var users int64
		if err := tx.Model(&model.User{}).Where("role_id = ?", id).Count(&users).Error; err != nil {
			return err
		}
		if users > 0 {
			return repository.ErrRoleInUse
		}
		if err := tx.Delete(&model.RoleGrant{}, "role_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&role).Error
	})
	if err != nil {
		return err
	}

	repo.hub.Publish(hub.Message{
		Name: event.RoleDeleted,
		Fields: hub.Fields{
			"role_id": id,
		},
	})
	return nil
}

// GrantRight implements RoleRepository interface.
func (repo *Repository) GrantRight(roleID, rightID uuid.UUID) error {
	if roleID == uuid.Nil || rightID == uuid.Nil {
		return repository.ErrNilID
	}

	var created bool
	err := repo.db.Transaction(func(tx *gorm.DB) error {
		if exists, err := gormutil.RecordExists(tx, &model.Role{ID: roleID}); err != nil {
			return err
		} else if !exists {
			return repository.ErrNotFound
		}
		if exists, err := gormutil.RecordExists(tx, &model.AccessRight{ID: rightID}); err != nil {
			return err
		} else if !exists {
			return repository.ErrNotFound
		}
		if held, err := gormutil.RecordExists(tx, &model.RoleGrant{RoleID: roleID, RightID: rightID}); err != nil {
			return err
		} else if held {
			return nil // 付与済み
		}
		created = true
		return tx.Create(&model.RoleGrant{RoleID: roleID, RightID: rightID}).Error
	})
	if err != nil {
		return err
	}

	if created {
		repo.hub.Publish(hub.Message{
			Name: event.RoleUpdated,
			Fields: hub.Fields{
				"role_id": roleID,
			},
		})
	}
	return nil
}

// GrantRights implements RoleRepository interface.
func (repo *Repository) GrantRights(roleID uuid.UUID, rightIDs []uuid.UUID) error {
	if roleID == uuid.Nil {
		return repository.ErrNilID
	}

	var added bool
	err := repo.db.Transaction(func(tx *gorm.DB) error {
		if exists, err := gormutil.RecordExists(tx, &model.Role{ID: roleID}); err != nil {
			return err
		} else if !exists {
			return repository.ErrNotFound
		}

		held := make([]uuid.UUID, 0)
		if err := tx.Model(&model.RoleGrant{}).Where("role_id = ?", roleID).Pluck("right_id", &held).Error; err != nil {
			return err
		}
		heldSet := make(map[uuid.UUID]struct{}, len(held))
		for _, id := range held {
			heldSet[id] = struct{}{}
		}

		for _, rightID := range rightIDs {
			if _, ok := heldSet[rightID]; ok {
				continue
			}
			if err := tx.Create(&model.RoleGrant{RoleID: roleID, RightID: rightID}).Error; err != nil {
				return err
			}
			added = true
		}
		return nil
	})
	if err != nil {
		return err
	}

	if added {
		repo.hub.Publish(hub.Message{
			Name: event.RoleUpdated,
			Fields: hub.Fields{
				"role_id": roleID,
			},
		})
	}
	return nil
}

// RevokeRight implements RoleRepository interface.
func (repo *Repository) RevokeRight(roleID, rightID uuid.UUID) error {
	if roleID == uuid.Nil || rightID == uuid.Nil {
		return repository.ErrNilID
	}

	var revoked bool
	err := repo.db.Transaction(func(tx *gorm.DB) error {
		if exists, err := gormutil.RecordExists(tx, &model.Role{ID: roleID}); err != nil {
			return err
		} else if !exists {
			return repository.ErrNotFound
		}
		if exists, err := gormutil.RecordExists(tx, &model.AccessRight{ID: rightID}); err != nil {
			return err
		} else if !exists {
			return repository.ErrNotFound
		}
		result := tx.Delete(&model.RoleGrant{}, "role_id = ? AND right_id = ?", roleID, rightID)
		if result.Error != nil {
			return result.Error
		}
		revoked = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return err
	}

	if revoked {
		repo.hub.Publish(hub.Message{
			Name: event.RoleUpdated,
			Fields: hub.Fields{
				"role_id": roleID,
			},
		})
	}
	return nil
}

// GetGrantedRights implements RoleRepository interface.
func (repo *Repository) GetGrantedRights(roleID uuid.UUID) ([]*model.AccessRight, error) {
	if roleID == uuid.Nil {
		return nil, repository.ErrNilID
	}
	if exists, err := gormutil.RecordExists(repo.db, &model.Role{ID: roleID}); err != nil {
		return nil, err
	} else if !exists {
		return nil, repository.ErrNotFound
	}

	rights := make([]*model.AccessRight, 0)
	err := repo.db.
		Joins("INNER JOIN role_grants ON role_grants.right_id = access_rights.id").
		Where("role_grants.role_id = ?", roleID).
		Find(&rights).
		Error
	return rights, err
}
