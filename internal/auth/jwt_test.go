package auth

import (
	"testing"
	"time"

	"shareabyte/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
		Issuer:        "test",
	}
}

func TestIssueAndParseTokens(t *testing.T) {
	cfg := testJWTConfig()
	pair, err := IssueTokens(cfg, 42, "a@x.com", "user")
	require.NoError(t, err)

	claims, err := ParseAccessToken(cfg, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)

	userID, err := ParseRefreshSubject(cfg, pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	cfg := testJWTConfig()
	pair, err := IssueTokens(cfg, 7, "b@x.com", "user")
	require.NoError(t, err)

	_, err = ParseAccessToken(cfg, pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseRefreshSubject(cfg, pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	pair, err := IssueTokens(cfg, 9, "c@x.com", "user")
	require.NoError(t, err)

	other := testJWTConfig()
	other.AccessSecret = "different"
	_, err = ParseAccessToken(other, pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
