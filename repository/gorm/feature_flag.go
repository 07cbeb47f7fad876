package gorm

import (
	"github.com/leandro-lugaresi/hub"
	"gorm.io/gorm/clause"

	"github.com/citrusworks/shopadmin/event"
	"github.com/citrusworks/shopadmin/model"
	"github.com/citrusworks/shopadmin/repository"
	"github.com/citrusworks/shopadmin/utils/validator"
)

// GetFeatureFlags implements FeatureFlagRepository interface.
func (repo *Repository) GetFeatureFlags() ([]*model.FeatureFlag, error) {
	flags := make([]*model.FeatureFlag, 0)
	err := repo.db.Order("name").Find(&flags).Error
	return flags, err
}

// GetEnabledFeatures implements FeatureFlagRepository interface.
func (repo *Repository) GetEnabledFeatures() ([]string, error) {
	names := make([]string, 0)
	err := repo.db.Model(&model.FeatureFlag{}).Where("enabled = TRUE").Order("name").Pluck("name", &names).Error
	return names, err
}

// SetFeatureFlag implements FeatureFlagRepository interface.
func (repo *Repository) SetFeatureFlag(name string, enabled bool) error {
	if err := validator.ValidateVar(name, validator.FeatureNameRuleRequired...); err != nil {
		return repository.ArgError("name", err.Error())
	}

	err := repo.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"enabled": enabled}),
		}).
		Create(&model.FeatureFlag{Name: name, Enabled: enabled}).
		Error
	if err != nil {
		return err
	}

	repo.hub.Publish(hub.Message{
		Name: event.FeatureFlagUpdated,
		Fields: hub.Fields{
			"name":    name,
			"enabled": enabled,
		},
	})
	return nil
}
