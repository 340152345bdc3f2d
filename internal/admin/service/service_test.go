package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	adminModel "github.com/technoverse/registration-portal/internal/admin/model"
	"github.com/technoverse/registration-portal/internal/admin/repository"
	"github.com/technoverse/registration-portal/internal/auth"
)

func setupService(t *testing.T) (Service, repository.Repository) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&adminModel.Admin{}))

	repo := repository.New(db)
	tokens := auth.NewManager("test-secret", 8*time.Hour)
	return New(repo, tokens, zap.NewNop().Sugar()), repo
}

func seedAdmin(t *testing.T, repo repository.Repository, username, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &adminModel.Admin{
		ID:           "a1",
		Username:     username,
		PasswordHash: string(hash),
	}))
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success stores token as active session", func(t *testing.T) {
		svc, repo := setupService(t)
		seedAdmin(t, repo, "alice", "hunter2secret")

		token, err := svc.Login(ctx, &adminModel.LoginRequest{Username: "alice", Password: "hunter2secret"})

		require.NoError(t, err)
		require.NotEmpty(t, token)

		admin, err := repo.GetByID(ctx, "a1")
		require.NoError(t, err)
		require.NotNil(t, admin.ActiveSessionToken)
		assert.Equal(t, token, *admin.ActiveSessionToken)
	})

	t.Run("unknown username", func(t *testing.T) {
		svc, _ := setupService(t)

		_, err := svc.Login(ctx, &adminModel.LoginRequest{Username: "ghost", Password: "whatever"})
		assert.ErrorIs(t, err, adminModel.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, repo := setupService(t)
		seedAdmin(t, repo, "alice", "hunter2secret")

		_, err := svc.Login(ctx, &adminModel.LoginRequest{Username: "alice", Password: "wrong"})
		assert.ErrorIs(t, err, adminModel.ErrInvalidCredentials)
	})
}

func TestService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid active token resolves principal", func(t *testing.T) {
		svc, repo := setupService(t)
		seedAdmin(t, repo, "alice", "hunter2secret")

		token, err := svc.Login(ctx, &adminModel.LoginRequest{Username: "alice", Password: "hunter2secret"})
		require.NoError(t, err)

		admin, err := svc.Authenticate(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "alice", admin.Username)
	})

	t.Run("token superseded by newer login", func(t *testing.T) {
		svc, repo := setupService(t)
		seedAdmin(t, repo, "alice", "hunter2secret")

		first, err := svc.Login(ctx, &adminModel.LoginRequest{Username: "alice", Password: "hunter2secret"})
		require.NoError(t, err)

		// JWT issued-at has second resolution; ensure the second token differs.
		time.Sleep(1100 * time.Millisecond)

		second, err := svc.Login(ctx, &adminModel.LoginRequest{Username: "alice", Password: "hunter2secret"})
		require.NoError(t, err)
		require.NotEqual(t, first, second)

		_, err = svc.Authenticate(ctx, first)
		assert.ErrorIs(t, err, adminModel.ErrSessionStale)

		_, err = svc.Authenticate(ctx, second)
		assert.NoError(t, err)
	})

	t.Run("forged token fails cryptographic check", func(t *testing.T) {
		svc, repo := setupService(t)
		seedAdmin(t, repo, "alice", "hunter2secret")

		forged, err := auth.NewManager("other-secret", 8*time.Hour).Generate("a1", "alice")
		require.NoError(t, err)

		_, err = svc.Authenticate(ctx, forged)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("valid token for missing principal is stale", func(t *testing.T) {
		svc, _ := setupService(t)

		orphan, err := auth.NewManager("test-secret", 8*time.Hour).Generate("missing", "ghost")
		require.NoError(t, err)

		_, err = svc.Authenticate(ctx, orphan)
		assert.ErrorIs(t, err, adminModel.ErrSessionStale)
	})

	t.Run("never logged in means no active session", func(t *testing.T) {
		svc, repo := setupService(t)
		seedAdmin(t, repo, "alice", "hunter2secret")

		token, err := auth.NewManager("test-secret", 8*time.Hour).Generate("a1", "alice")
		require.NoError(t, err)

		_, err = svc.Authenticate(ctx, token)
		assert.ErrorIs(t, err, adminModel.ErrSessionStale)
	})
}

func TestService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("creates principal when absent", func(t *testing.T) {
		svc, repo := setupService(t)

		require.NoError(t, svc.EnsureAdmin(ctx, "alice", "hunter2secret"))

		admin, err := repo.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("hunter2secret")))
	})

	t.Run("never overwrites existing hash", func(t *testing.T) {
		svc, repo := setupService(t)
		seedAdmin(t, repo, "alice", "original")

		require.NoError(t, svc.EnsureAdmin(ctx, "alice", "different"))

		admin, err := repo.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("original")))
	})
}
