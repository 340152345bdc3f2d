// Package service provides the admission-control logic for the team module.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	settingsService "github.com/technoverse/registration-portal/internal/settings/service"
	teamModel "github.com/technoverse/registration-portal/internal/team/model"
	"github.com/technoverse/registration-portal/internal/team/repository"
)

// Service defines the interface for team operations.
type Service interface {
	// Register evaluates an incoming registration against the current
	// settings and creates the team in waitlisted status when admitted.
	Register(ctx context.Context, req *teamModel.RegisterTeamRequest) (*teamModel.Team, error)

	// List returns all teams, newest registration first.
	List(ctx context.Context) ([]teamModel.Team, error)

	// Approve promotes a team to approved status. Idempotent.
	Approve(ctx context.Context, id string) (*teamModel.Team, error)

	// Delete removes a team permanently.
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo     repository.Repository
	settings settingsService.Service
	logger   *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, settings settingsService.Service, logger *zap.SugaredLogger) Service {
	return &service{
		repo:     repo,
		settings: settings,
		logger:   logger,
	}
}

// Register evaluates an incoming registration and creates the team.
//
// Admission checks only payment info and name uniqueness. Capacity is
// deliberately not checked here: waitlist admission is unconditional and
// promotion to approved is a manual admin decision, so a team may register
// even when all seats are taken.
func (s *service) Register(ctx context.Context, req *teamModel.RegisterTeamRequest) (*teamModel.Team, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	if settings.PaymentRequired && req.TransactionID == "" {
		return nil, teamModel.ErrPaymentInfoMissing
	}

	// Advisory pre-check; the unique index on team_name is authoritative.
	exists, err := s.repo.ExistsByName(ctx, req.TeamName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, teamModel.ErrTeamExists
	}

	team := &teamModel.Team{
		ID:               uuid.NewString(),
		TeamName:         req.TeamName,
		TeamLeaderName:   req.TeamLeaderName,
		TeamLeaderPhone:  req.TeamLeaderPhone,
		Status:           teamModel.StatusWaitlisted,
		RegistrationDate: time.Now(),
	}
	if req.TransactionID != "" {
		team.TransactionID = &req.TransactionID
	}
	if req.PaymentScreenshotURL != "" {
		team.PaymentScreenshotURL = &req.PaymentScreenshotURL
	}

	team.Members = make([]teamModel.Member, 0, len(req.Members))
	for _, m := range req.Members {
		team.Members = append(team.Members, teamModel.Member{
			Name:   m.Name,
			SapID:  m.SapID,
			School: m.School,
			Course: m.Course,
			Year:   m.Year,
			Email:  m.Email,
			Phone:  m.Phone,
		})
	}

	if len(req.Members) != settings.MembersPerTeam {
		s.logger.Warnw("member count differs from configured team size",
			"team_name", req.TeamName,
			"members", len(req.Members),
			"members_per_team", settings.MembersPerTeam,
		)
	}

	if err := s.repo.Create(ctx, team); err != nil {
		return nil, err
	}

	s.logger.Infow("team registered", "team_name", team.TeamName, "team_id", team.ID)
	return team, nil
}

// List returns all teams, newest registration first.
func (s *service) List(ctx context.Context) ([]teamModel.Team, error) {
	return s.repo.List(ctx)
}

// Approve promotes a team to approved status. No capacity check is applied:
// capacity is managed manually by the admin.
func (s *service) Approve(ctx context.Context, id string) (*teamModel.Team, error) {
	team, err := s.repo.UpdateStatus(ctx, id, teamModel.StatusApproved)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team approved", "team_name", team.TeamName, "team_id", team.ID)
	return team, nil
}

// Delete removes a team permanently.
func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("team deleted", "team_id", id)
	return nil
}
