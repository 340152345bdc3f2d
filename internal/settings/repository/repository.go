// Package repository provides data access layer for the settings module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	settingsModel "github.com/technoverse/registration-portal/internal/settings/model"
)

// Repository defines the interface for settings data access operations.
type Repository interface {
	// Get returns the singleton settings record.
	Get(ctx context.Context) (*settingsModel.Settings, error)

	// Upsert inserts or replaces the singleton settings record.
	Upsert(ctx context.Context, settings *settingsModel.Settings) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new settings repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Get returns the singleton settings record.
func (r *repository) Get(ctx context.Context) (*settingsModel.Settings, error) {
	var settings settingsModel.Settings
	err := r.db.WithContext(ctx).
		Where("singleton = ?", settingsModel.SingletonKey).
		First(&settings).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, settingsModel.ErrSettingsNotFound
		}
		return nil, err
	}

	return &settings, nil
}

// Upsert inserts or replaces the singleton settings record. The primary key
// is always the singleton key, so Save performs the upsert.
func (r *repository) Upsert(ctx context.Context, settings *settingsModel.Settings) error {
	settings.Singleton = settingsModel.SingletonKey
	return r.db.WithContext(ctx).Save(settings).Error
}
