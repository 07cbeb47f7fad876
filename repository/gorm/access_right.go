package gorm

import (
	"errors"

	"github.com/gofrs/uuid"
	"github.com/leandro-lugaresi/hub"
	"gorm.io/gorm"

	"github.com/citrusworks/shopadmin/event"
	"github.com/citrusworks/shopadmin/model"
	"github.com/citrusworks/shopadmin/repository"
	"github.com/citrusworks/shopadmin/utils/gormutil"
	"github.com/citrusworks/shopadmin/utils/validator"
)

// アクセス権一覧のソート可能カラム
var accessRightSortColumns = map[string]string{
	"":                 "operation_key",
	"operationKey":     "operation_key",
	"shortKey":         "short_key",
	"shortDescription": "short_description",
	"details":          "details",
	"createdAt":        "created_at",
	"updatedAt":        "updated_at",
}

// DeclareAccessRight implements AccessRightRepository interface.
func (repo *Repository) DeclareAccessRight(args repository.DeclareAccessRightArgs) (*model.AccessRight, error) {
	if err := args.Validate(); err != nil {
		return nil, repository.ArgError("args", err.Error())
	}

	var right model.AccessRight
	err := repo.db.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&right, &model.AccessRight{OperationKey: args.OperationKey}).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 新規宣言 ShortKeyの衝突確認
			if exists, err := gormutil.RecordExists(tx, &model.AccessRight{ShortKey: args.ShortKey}); err != nil {
				return err
			} else if exists {
				return repository.ArgError("shortKey", "shortKey is already used by another operation")
			}
			right = model.AccessRight{
				ID:               uuid.Must(uuid.NewV4()),
				OperationKey:     args.OperationKey,
				ShortKey:         args.ShortKey,
				ShortDescription: args.ShortDescription,
				Details:          args.Details,
			}
			return tx.Create(&right).Error
		} else if err != nil {
			return err
		}

		// 宣言済み 説明文を上書きしてIDを維持する
		changes := map[string]interface{}{
			"short_description": args.ShortDescription,
			"details":           args.Details,
		}
		if right.ShortKey != args.ShortKey {
			// ShortKeyは保有権から参照された後は変更不可
			if granted, err := gormutil.RecordExists(tx, &model.RoleGrant{RightID: right.ID}); err != nil {
				return err
			} else if granted {
				return repository.ArgError("shortKey", "shortKey is immutable while the right is granted")
			}
			if used, err := gormutil.RecordExists(tx, &model.AccessRight{ShortKey: args.ShortKey}); err != nil {
				return err
			} else if used {
				return repository.ArgError("shortKey", "shortKey is already used by another operation")
			}
			changes["short_key"] = args.ShortKey
		}
		return tx.Model(&right).Updates(changes).Error
	})
	if err != nil {
		return nil, err
	}

	repo.hub.Publish(hub.Message{
		Name: event.AccessRightUpdated,
		Fields: hub.Fields{
			"right_id":      right.ID,
			"operation_key": right.OperationKey,
		},
	})
	return &right, nil
}

// UpdateAccessRight implements AccessRightRepository interface.
func (repo *Repository) UpdateAccessRight(id uuid.UUID, args repository.UpdateAccessRightArgs) error {
	if id == uuid.Nil {
		return repository.ErrNilID
	}

	var right model.AccessRight
	changes := map[string]interface{}{}
	err := repo.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&right, &model.AccessRight{ID: id}).Error; err != nil {
			return convertError(err)
		}

		if args.ShortDescription.Valid {
			if err := validator.ValidateVar(args.ShortDescription.String, validator.ShortDescriptionRuleRequired...); err != nil {
				return repository.ArgError("args.ShortDescription", err.Error())
			}
			changes["short_description"] = args.ShortDescription.String
		}
		if args.Details.Valid {
			if err := validator.ValidateVar(args.Details.String, validator.DetailsRule...); err != nil {
				return repository.ArgError("args.Details", err.Error())
			}
			changes["details"] = args.Details.String
		}

		if len(changes) > 0 {
			return tx.Model(&right).Updates(changes).Error
		}
		return nil
	})
	if err != nil {
		return err
	}

	if len(changes) > 0 {
		repo.hub.Publish(hub.Message{
			Name: event.AccessRightUpdated,
			Fields: hub.Fields{
				"right_id":      right.ID,
				"operation_key": right.OperationKey,
			},
		})
	}
	return nil
}

// GetAccessRight implements AccessRightRepository interface.
func (repo *Repository) GetAccessRight(id uuid.UUID) (*model.AccessRight, error) {
	if id == uuid.Nil {
		return nil, repository.ErrNilID
	}
	var right model.AccessRight
	if err := repo.db.First(&right, &model.AccessRight{ID: id}).Error; err != nil {
		return nil, convertError(err)
	}
	return &right, nil
}

// GetAccessRightByKey implements AccessRightRepository interface.
func (repo *Repository) GetAccessRightByKey(key string) (*model.AccessRight, error) {
	if len(key) == 0 {
		return nil, repository.ErrNotFound
	}
	var right model.AccessRight
	if err := repo.db.Where("operation_key = ? OR short_key = ?", key, key).First(&right).Error; err != nil {
		return nil, convertError(err)
	}
	return &right, nil
}

// GetAccessRights implements AccessRightRepository interface.
func (repo *Repository) GetAccessRights(q repository.AccessRightsQuery) ([]*model.AccessRight, int64, error) {
	column, ok := accessRightSortColumns[q.SortBy]
	if !ok {
		return nil, 0, repository.ArgError("sort", "unknown sort column: "+q.SortBy)
	}

	tx := repo.db.Model(&model.AccessRight{})
	if len(q.Filter) > 0 {
		pattern := "%" + q.Filter + "%"
		tx = tx.Where("operation_key LIKE ? OR short_key LIKE ? OR short_description LIKE ?", pattern, pattern, pattern)
	}

	total, err := gormutil.Count(tx.Session(&gorm.Session{}))
	if err != nil {
		return nil, 0, err
	}

	limit, offset := pageToLimitAndOffset(q.Page, q.PerPage)
	order := column
	if q.Descending {
		order += " DESC"
	}

	rights := make([]*model.AccessRight, 0)
	err = tx.Order(order).Scopes(gormutil.LimitAndOffset(limit, offset)).Find(&rights).Error
	return rights, total, err
}

// DeleteAccessRight implements AccessRightRepository interface.
func (repo *Repository) DeleteAccessRight(id uuid.UUID) error {
	if id == uuid.Nil {
		return repository.ErrNilID
	}

	var right model.AccessRight
	err := repo.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&right, &model.AccessRight{ID: id}).Error; err != nil {
			return convertError(err)
		}
		// 保有しているロールが残っている間は削除不可
		if granted, err := gormutil.RecordExists(tx, &model.RoleGrant{RightID: id}); err != nil {
			return err
		} else if granted {
			return repository.ErrStillGranted
		}
		return tx.Delete(&right).Error
	})
	if err != nil {
		return err
	}

	repo.hub.Publish(hub.Message{
		Name: event.AccessRightDeleted,
		Fields: hub.Fields{
			"right_id":      right.ID,
			"operation_key": right.OperationKey,
		},
	})
	return nil
}
