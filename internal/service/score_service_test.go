package service

import (
	"testing"
	"time"

	"shareabyte/internal/models"
	"shareabyte/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.ShareScore{},
		&models.Post{},
		&models.Message{},
		&models.Notification{},
	))
	return db
}

func TestApplyAdjustment(t *testing.T) {
	tests := []struct {
		name    string
		current int
		delta   int
		want    int
	}{
		{"positive delta", 40, 50, 90},
		{"negative within range", 100, -10, 90},
		{"clamped at zero", 5, -50, 0},
		{"zero stays zero", 0, -10, 0},
		{"zero delta", 7, 0, 7},
		{"from zero up", 0, 50, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyAdjustment(tt.current, tt.delta))
		})
	}
}

func TestApplyAdjustmentNeverNegative(t *testing.T) {
	for current := 0; current <= 100; current += 10 {
		for delta := -200; delta <= 200; delta += 25 {
			assert.GreaterOrEqual(t, ApplyAdjustment(current, delta), 0,
				"current=%d delta=%d", current, delta)
		}
	}
}

// Clamping is lossy: a down-then-up round trip does not restore the
// original value when the intermediate result hit the floor.
func TestApplyAdjustmentNotReversible(t *testing.T) {
	got := ApplyAdjustment(ApplyAdjustment(5, -50), 50)
	assert.Equal(t, 50, got)
	assert.NotEqual(t, 5, got)
}

func TestScoreServiceAdjust(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewScoreRepository(db)
	svc := NewScoreService(repo, nil, nil)

	user := models.User{Email: "a@x.com", Username: "a", Role: "USER"}
	require.NoError(t, db.Create(&user).Error)
	score, err := repo.CreateForUser(user.ID, user.Email, 1000)
	require.NoError(t, err)

	before := time.Now().Add(-time.Second)
	next, err := svc.Adjust(score, -2000)
	require.NoError(t, err)
	assert.Equal(t, 0, next)

	stored, err := repo.GetByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Score)
	require.NotNil(t, stored.LastUpdated)
	assert.True(t, stored.LastUpdated.After(before), "last_updated must be stamped")
}

func TestLeaderboardRanking(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewScoreRepository(db)
	svc := NewScoreService(repo, nil, nil)

	earlier := time.Now().Add(-time.Hour)
	later := time.Now()
	seed := []models.ShareScore{
		{UserID: 1, UserEmail: "low@x.com", Score: 10, LastUpdated: &later},
		{UserID: 2, UserEmail: "high@x.com", Score: 900, LastUpdated: &later},
		{UserID: 3, UserEmail: "tie-early@x.com", Score: 500, LastUpdated: &earlier},
		{UserID: 4, UserEmail: "tie-late@x.com", Score: 500, LastUpdated: &later},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	entries, err := svc.Leaderboard(t.Context(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, "high@x.com", entries[0].UserEmail)
	assert.Equal(t, 1, entries[0].Rank)
	// ties: earlier last_updated ranks ahead
	assert.Equal(t, "tie-early@x.com", entries[1].UserEmail)
	assert.Equal(t, "tie-late@x.com", entries[2].UserEmail)
	assert.Equal(t, "low@x.com", entries[3].UserEmail)

	rank, err := repo.RankOf(3)
	require.NoError(t, err)
	assert.Equal(t, 2, rank)
}
