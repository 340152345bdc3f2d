package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	settingsModel "github.com/technoverse/registration-portal/internal/settings/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&settingsModel.Settings{}))
	return db
}

func TestRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("not found when never written", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		settings, err := repo.Get(ctx)

		assert.Nil(t, settings)
		assert.ErrorIs(t, err, settingsModel.ErrSettingsNotFound)
	})
}

func TestRepository_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("first write inserts", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		s := settingsModel.Defaults()
		s.MaxTeams = 10
		require.NoError(t, repo.Upsert(ctx, &s))

		stored, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, 10, stored.MaxTeams)
		assert.Equal(t, settingsModel.SingletonKey, stored.Singleton)
	})

	t.Run("second write replaces the singleton", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		first := settingsModel.Defaults()
		require.NoError(t, repo.Upsert(ctx, &first))

		second := settingsModel.Defaults()
		second.MaxTeams = 99
		second.PaymentRequired = false
		require.NoError(t, repo.Upsert(ctx, &second))

		var count int64
		require.NoError(t, db.Model(&settingsModel.Settings{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)

		stored, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, 99, stored.MaxTeams)
		assert.False(t, stored.PaymentRequired)
	})
}
