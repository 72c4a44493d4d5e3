package service

import (
	"testing"

	"shareabyte/config"
	"shareabyte/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := config.Load()
	cfg.JWT.AccessSecret = "test-secret"
	cfg.JWT.RefreshSecret = "test-refresh-secret"
	return cfg
}

func TestRegisterSeedsShareScore(t *testing.T) {
	db := setupTestDB(t)
	scoreRepo := repository.NewScoreRepository(db)
	svc := NewAuthService(testConfig(), repository.NewUserRepository(db), scoreRepo)

	u, tokens, err := svc.Register("new@x.com", "newuser", "password123", "New", "User")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	score, err := scoreRepo.GetByUserID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, 1000, score.Score, "sign-up allotment")
	assert.Equal(t, "new@x.com", score.UserEmail)
	assert.NotNil(t, score.LastUpdated)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(testConfig(), repository.NewUserRepository(db), repository.NewScoreRepository(db))

	_, _, err := svc.Register("dup@x.com", "first", "password123", "", "")
	require.NoError(t, err)
	_, _, err = svc.Register("dup@x.com", "second", "password123", "", "")
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(testConfig(), repository.NewUserRepository(db), repository.NewScoreRepository(db))

	_, _, err := svc.Register("login@x.com", "loginuser", "password123", "", "")
	require.NoError(t, err)

	_, tokens, err := svc.Login("login@x.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)

	_, _, err = svc.Login("login@x.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCreds)
}
