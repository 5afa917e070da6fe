package jwt

import (
	"testing"
	"time"

	"patient-management-service/config"
	"patient-management-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "alice", entity.RoleIDAssistant)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, entity.RoleIDAssistant, claims.RoleID)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenCarriesRefreshType(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "alice", entity.RoleIDUser)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := newTestService().GenerateAccessToken(uuid.New(), "alice", entity.RoleIDUser)
	require.NoError(t, err)

	other := NewJWTService(config.JWTConfig{
		Secret:        "different-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  -time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
	token, _, err := svc.GenerateAccessToken(uuid.New(), "alice", entity.RoleIDUser)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := newTestService().ValidateToken("not-a-jwt")
	assert.Error(t, err)
}
