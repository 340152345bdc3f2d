// Package repository provides data access layer for the team module.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	teamModel "github.com/technoverse/registration-portal/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create persists a new team together with its members.
	Create(ctx context.Context, team *teamModel.Team) error

	// ExistsByName reports whether a team with the exact name exists,
	// regardless of status.
	ExistsByName(ctx context.Context, teamName string) (bool, error)

	// List returns all teams with members, newest registration first.
	List(ctx context.Context) ([]teamModel.Team, error)

	// UpdateStatus sets the team's status and returns the updated team.
	UpdateStatus(ctx context.Context, id string, status teamModel.Status) (*teamModel.Team, error)

	// Delete removes the team permanently; members cascade.
	Delete(ctx context.Context, id string) error

	// CountByStatus returns the number of teams in the given status.
	CountByStatus(ctx context.Context, status teamModel.Status) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new team repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create persists a new team together with its members. The unique index on
// team_name is the authoritative duplicate guard; a violation surfaces as
// ErrTeamExists.
func (r *repository) Create(ctx context.Context, team *teamModel.Team) error {
	err := r.db.WithContext(ctx).Create(team).Error
	if err != nil {
		if isDuplicateError(err) {
			return teamModel.ErrTeamExists
		}
		return err
	}
	return nil
}

// isDuplicateError checks if the error is a unique constraint violation.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint")
}

// ExistsByName reports whether a team with the exact name exists.
func (r *repository) ExistsByName(ctx context.Context, teamName string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Where("team_name = ?", teamName).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// List returns all teams with members, newest registration first.
func (r *repository) List(ctx context.Context) ([]teamModel.Team, error) {
	var teams []teamModel.Team
	err := r.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("members.id ASC")
		}).
		Order("registration_date DESC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}

	if teams == nil {
		teams = []teamModel.Team{}
	}
	return teams, nil
}

// UpdateStatus sets the team's status and returns the updated team.
// Reapplying the same status is a no-op and not an error.
func (r *repository) UpdateStatus(ctx context.Context, id string, status teamModel.Status) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Preload("Members").
		Where("id = ?", id).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}

	if team.Status != status {
		err = r.db.WithContext(ctx).
			Model(&teamModel.Team{}).
			Where("id = ?", id).
			Update("status", status).Error
		if err != nil {
			return nil, err
		}
		team.Status = status
	}

	return &team, nil
}

// Delete removes the team permanently; members cascade via the foreign key.
func (r *repository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&teamModel.Team{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return teamModel.ErrTeamNotFound
	}
	return nil
}

// CountByStatus returns the number of teams in the given status.
func (r *repository) CountByStatus(ctx context.Context, status teamModel.Status) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Where("status = ?", status).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
