package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	settingsModel "github.com/technoverse/registration-portal/internal/settings/model"
	settingsRepository "github.com/technoverse/registration-portal/internal/settings/repository"
	settingsService "github.com/technoverse/registration-portal/internal/settings/service"
	teamModel "github.com/technoverse/registration-portal/internal/team/model"
	"github.com/technoverse/registration-portal/internal/team/repository"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func setupService(t *testing.T) (Service, settingsService.Service, repository.Repository) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(&teamModel.Team{}, &teamModel.Member{}, &settingsModel.Settings{}))

	logger := zap.NewNop().Sugar()
	settingsSvc := settingsService.New(settingsRepository.New(db), logger)
	teamRepo := repository.New(db)
	return New(teamRepo, settingsSvc, logger), settingsSvc, teamRepo
}

func registerRequest(name string) *teamModel.RegisterTeamRequest {
	return &teamModel.RegisterTeamRequest{
		TeamName:        name,
		TeamLeaderName:  "Lead",
		TeamLeaderPhone: "9999999999",
		Members: []teamModel.MemberInput{
			{Name: "M1", SapID: "s1", School: "SOCS", Course: "CSE", Year: 2, Email: "m1@x.dev", Phone: "1"},
			{Name: "M2", SapID: "s2", School: "SOCS", Course: "CSE", Year: 2, Email: "m2@x.dev", Phone: "2"},
			{Name: "M3", SapID: "s3", School: "SOCS", Course: "CSE", Year: 3, Email: "m3@x.dev", Phone: "3"},
		},
	}
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("payment required rejects missing transaction id", func(t *testing.T) {
		svc, _, _ := setupService(t)
		// defaults: paymentRequired=true

		_, err := svc.Register(ctx, registerRequest("rocket"))
		assert.ErrorIs(t, err, teamModel.ErrPaymentInfoMissing)
	})

	t.Run("payment required accepts transaction id", func(t *testing.T) {
		svc, _, _ := setupService(t)

		req := registerRequest("rocket")
		req.TransactionID = "txn-123"

		team, err := svc.Register(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, teamModel.StatusWaitlisted, team.Status)
		require.NotNil(t, team.TransactionID)
		assert.Equal(t, "txn-123", *team.TransactionID)
		assert.NotEmpty(t, team.ID)
		assert.False(t, team.RegistrationDate.IsZero())
	})

	t.Run("payment disabled accepts request without transaction id", func(t *testing.T) {
		svc, settingsSvc, _ := setupService(t)
		_, err := settingsSvc.Update(ctx, &settingsModel.UpdateSettingsRequest{PaymentRequired: boolPtr(false)})
		require.NoError(t, err)

		team, err := svc.Register(ctx, registerRequest("rocket"))
		require.NoError(t, err)
		assert.Nil(t, team.TransactionID)
	})

	t.Run("duplicate team name rejected regardless of status", func(t *testing.T) {
		svc, settingsSvc, teamRepo := setupService(t)
		_, err := settingsSvc.Update(ctx, &settingsModel.UpdateSettingsRequest{PaymentRequired: boolPtr(false)})
		require.NoError(t, err)

		first, err := svc.Register(ctx, registerRequest("rocket"))
		require.NoError(t, err)

		_, err = teamRepo.UpdateStatus(ctx, first.ID, teamModel.StatusApproved)
		require.NoError(t, err)

		_, err = svc.Register(ctx, registerRequest("rocket"))
		assert.ErrorIs(t, err, teamModel.ErrTeamExists)
	})

	t.Run("capacity never checked at registration", func(t *testing.T) {
		svc, settingsSvc, teamRepo := setupService(t)
		_, err := settingsSvc.Update(ctx, &settingsModel.UpdateSettingsRequest{
			MaxTeams:        intPtr(2),
			PaymentRequired: boolPtr(false),
		})
		require.NoError(t, err)

		a, err := svc.Register(ctx, registerRequest("alpha"))
		require.NoError(t, err)
		b, err := svc.Register(ctx, registerRequest("beta"))
		require.NoError(t, err)

		_, err = teamRepo.UpdateStatus(ctx, a.ID, teamModel.StatusApproved)
		require.NoError(t, err)
		_, err = teamRepo.UpdateStatus(ctx, b.ID, teamModel.StatusApproved)
		require.NoError(t, err)

		// at capacity, waitlist admission still succeeds
		_, err = svc.Register(ctx, registerRequest("gamma"))
		require.NoError(t, err)
	})

	t.Run("member count mismatch is not rejected", func(t *testing.T) {
		svc, settingsSvc, _ := setupService(t)
		_, err := settingsSvc.Update(ctx, &settingsModel.UpdateSettingsRequest{PaymentRequired: boolPtr(false)})
		require.NoError(t, err)

		req := registerRequest("rocket")
		req.Members = req.Members[:1] // configured size is 3

		team, err := svc.Register(ctx, req)
		require.NoError(t, err)
		assert.Len(t, team.Members, 1)
	})
}

func TestService_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("promotes and is idempotent", func(t *testing.T) {
		svc, settingsSvc, _ := setupService(t)
		_, err := settingsSvc.Update(ctx, &settingsModel.UpdateSettingsRequest{PaymentRequired: boolPtr(false)})
		require.NoError(t, err)

		team, err := svc.Register(ctx, registerRequest("rocket"))
		require.NoError(t, err)

		approved, err := svc.Approve(ctx, team.ID)
		require.NoError(t, err)
		assert.Equal(t, teamModel.StatusApproved, approved.Status)

		again, err := svc.Approve(ctx, team.ID)
		require.NoError(t, err)
		assert.Equal(t, teamModel.StatusApproved, again.Status)
	})

	t.Run("approval has no capacity limit", func(t *testing.T) {
		svc, settingsSvc, _ := setupService(t)
		_, err := settingsSvc.Update(ctx, &settingsModel.UpdateSettingsRequest{
			MaxTeams:        intPtr(1),
			PaymentRequired: boolPtr(false),
		})
		require.NoError(t, err)

		a, err := svc.Register(ctx, registerRequest("alpha"))
		require.NoError(t, err)
		b, err := svc.Register(ctx, registerRequest("beta"))
		require.NoError(t, err)

		_, err = svc.Approve(ctx, a.ID)
		require.NoError(t, err)

		// capacity is managed manually by the admin, not enforced here
		_, err = svc.Approve(ctx, b.ID)
		require.NoError(t, err)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, _, _ := setupService(t)

		_, err := svc.Approve(ctx, "missing")
		assert.ErrorIs(t, err, teamModel.ErrTeamNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the team", func(t *testing.T) {
		svc, settingsSvc, _ := setupService(t)
		_, err := settingsSvc.Update(ctx, &settingsModel.UpdateSettingsRequest{PaymentRequired: boolPtr(false)})
		require.NoError(t, err)

		team, err := svc.Register(ctx, registerRequest("rocket"))
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, team.ID))

		teams, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, teams)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, _, _ := setupService(t)

		err := svc.Delete(ctx, "missing")
		assert.ErrorIs(t, err, teamModel.ErrTeamNotFound)
	})
}
