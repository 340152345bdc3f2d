// Package repository provides data access layer for the admin module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	adminModel "github.com/technoverse/registration-portal/internal/admin/model"
)

// Repository defines the interface for admin data access operations.
type Repository interface {
	// Create creates a new admin principal.
	Create(ctx context.Context, admin *adminModel.Admin) error

	// GetByUsername finds an admin by username.
	GetByUsername(ctx context.Context, username string) (*adminModel.Admin, error)

	// GetByID finds an admin by id.
	GetByID(ctx context.Context, id string) (*adminModel.Admin, error)

	// UpdateSessionToken replaces the admin's active session token.
	UpdateSessionToken(ctx context.Context, id, token string) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new admin repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create creates a new admin principal.
func (r *repository) Create(ctx context.Context, admin *adminModel.Admin) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

// GetByUsername finds an admin by username.
func (r *repository) GetByUsername(ctx context.Context, username string) (*adminModel.Admin, error) {
	var admin adminModel.Admin
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&admin).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, adminModel.ErrAdminNotFound
		}
		return nil, err
	}

	return &admin, nil
}

// GetByID finds an admin by id.
func (r *repository) GetByID(ctx context.Context, id string) (*adminModel.Admin, error) {
	var admin adminModel.Admin
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&admin).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, adminModel.ErrAdminNotFound
		}
		return nil, err
	}

	return &admin, nil
}

// UpdateSessionToken replaces the admin's active session token.
// Last write wins when two logins race; only the most recently stored
// token passes authentication afterwards.
func (r *repository) UpdateSessionToken(ctx context.Context, id, token string) error {
	result := r.db.WithContext(ctx).
		Model(&adminModel.Admin{}).
		Where("id = ?", id).
		Update("active_session_token", token)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return adminModel.ErrAdminNotFound
	}
	return nil
}
