// Package service provides business logic for the settings module.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	settingsModel "github.com/technoverse/registration-portal/internal/settings/model"
	"github.com/technoverse/registration-portal/internal/settings/repository"
)

// Service defines the interface for settings operations.
type Service interface {
	// Get returns the effective settings: the persisted record, or the
	// implicit defaults when none exists.
	Get(ctx context.Context) (settingsModel.Settings, error)

	// GetStored returns the persisted record only, or ErrSettingsNotFound.
	GetStored(ctx context.Context) (*settingsModel.Settings, error)

	// Update applies a partial update over the current effective settings
	// and upserts the result. No policy validation is performed.
	Update(ctx context.Context, req *settingsModel.UpdateSettingsRequest) (settingsModel.Settings, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new settings service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// Get returns the effective settings.
func (s *service) Get(ctx context.Context) (settingsModel.Settings, error) {
	stored, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsModel.ErrSettingsNotFound) {
			return settingsModel.Defaults(), nil
		}
		return settingsModel.Settings{}, err
	}
	return *stored, nil
}

// GetStored returns the persisted record only.
func (s *service) GetStored(ctx context.Context) (*settingsModel.Settings, error) {
	return s.repo.Get(ctx)
}

// Update applies a partial update and upserts the singleton record.
// Fields not supplied keep their prior values, or the defaults on first
// write. Values are accepted as-is: capacity sanity is the admin's call.
func (s *service) Update(ctx context.Context, req *settingsModel.UpdateSettingsRequest) (settingsModel.Settings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return settingsModel.Settings{}, err
	}

	if req.MaxTeams != nil {
		current.MaxTeams = *req.MaxTeams
	}
	if req.MembersPerTeam != nil {
		current.MembersPerTeam = *req.MembersPerTeam
	}
	if req.PaymentRequired != nil {
		current.PaymentRequired = *req.PaymentRequired
	}
	if req.RegistrationsOpen != nil {
		current.RegistrationsOpen = *req.RegistrationsOpen
	}
	if req.PaymentAmount != nil {
		current.PaymentAmount = req.PaymentAmount
	}
	if req.UpiID != nil {
		current.UpiID = req.UpiID
	}

	if err := s.repo.Upsert(ctx, &current); err != nil {
		return settingsModel.Settings{}, err
	}

	s.logger.Infow("settings updated",
		"max_teams", current.MaxTeams,
		"members_per_team", current.MembersPerTeam,
		"payment_required", current.PaymentRequired,
		"registrations_open", current.RegistrationsOpen,
	)
	return current, nil
}
