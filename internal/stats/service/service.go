// Package service derives public stats from settings and team counts.
package service

import (
	"context"

	"go.uber.org/zap"

	settingsService "github.com/technoverse/registration-portal/internal/settings/service"
	statsModel "github.com/technoverse/registration-portal/internal/stats/model"
	teamModel "github.com/technoverse/registration-portal/internal/team/model"
	teamRepository "github.com/technoverse/registration-portal/internal/team/repository"
)

// Service defines the interface for public stats operations.
type Service interface {
	// Get computes the public stats projection.
	Get(ctx context.Context) (*statsModel.Stats, error)
}

type service struct {
	settings settingsService.Service
	teams    teamRepository.Repository
	logger   *zap.SugaredLogger
}

// New creates a new stats service instance.
func New(settings settingsService.Service, teams teamRepository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		settings: settings,
		teams:    teams,
		logger:   logger,
	}
}

// Get computes the public stats projection. Only approved teams count
// toward the registered figure; waitlisted teams are invisible here.
func (s *service) Get(ctx context.Context) (*statsModel.Stats, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	approved, err := s.teams.CountByStatus(ctx, teamModel.StatusApproved)
	if err != nil {
		return nil, err
	}

	seatsEmpty := settings.MaxTeams - int(approved)
	if seatsEmpty < 0 {
		seatsEmpty = 0
	}

	return &statsModel.Stats{
		TeamsRegistered:   int(approved),
		SeatsEmpty:        seatsEmpty,
		TotalSeats:        settings.MaxTeams,
		MembersPerTeam:    settings.MembersPerTeam,
		PaymentRequired:   settings.PaymentRequired,
		RegistrationsOpen: settings.RegistrationsOpen,
	}, nil
}
