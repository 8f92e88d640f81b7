package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldtrack/fieldtrack-backend/internal/auth/jwt"
	"github.com/fieldtrack/fieldtrack-backend/pkg/config"
	"github.com/fieldtrack/fieldtrack-backend/pkg/errors"
)

func newTestManager(accessExpiry time.Duration) *jwt.Manager {
	return jwt.NewManager(&config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  accessExpiry,
		RefreshExpiry: 24 * time.Hour,
		Issuer:        "fieldtrack-test",
	})
}

func testUser() *jwt.UserInfo {
	return &jwt.UserInfo{
		ID:    "user-1",
		Email: "manager@example.com",
		Name:  "Manager One",
		Role:  "manager",
	}
}

func TestGenerateTokenPair_RoundTrip(t *testing.T) {
	manager := newTestManager(15 * time.Minute)

	pair, err := manager.GenerateTokenPair(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)

	claims, err := manager.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "manager@example.com", claims.Email)
	assert.Equal(t, "manager", claims.Role)

	refreshClaims, err := manager.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", refreshClaims.UserID)
}

func TestValidateAccessToken_Expired(t *testing.T) {
	manager := newTestManager(-time.Minute)

	pair, err := manager.GenerateTokenPair(testUser())
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(pair.AccessToken)
	require.Error(t, err)

	var appErr *errors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "TOKEN_EXPIRED", appErr.Code)
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	manager := newTestManager(15 * time.Minute)
	other := jwt.NewManager(&config.JWTConfig{
		Secret:        "a-different-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
		Issuer:        "fieldtrack-test",
	})

	pair, err := manager.GenerateTokenPair(testUser())
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(pair.AccessToken)
	require.Error(t, err)

	var appErr *errors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "TOKEN_INVALID", appErr.Code)
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	manager := newTestManager(15 * time.Minute)

	_, err := manager.ValidateAccessToken("not.a.token")
	require.Error(t, err)

	var appErr *errors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "TOKEN_INVALID", appErr.Code)
}

func TestRefreshTokenOutlivesAccessToken(t *testing.T) {
	manager := newTestManager(-time.Minute)

	pair, err := manager.GenerateTokenPair(testUser())
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(pair.AccessToken)
	assert.Error(t, err)

	_, err = manager.ValidateRefreshToken(pair.RefreshToken)
	assert.NoError(t, err)
}
