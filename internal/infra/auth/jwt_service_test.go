package auth

import (
	"testing"
	"time"

	"github.com/Yakorrr/merchandising-management-system/config"
	domainerrors "github.com/Yakorrr/merchandising-management-system/internal/domain/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTTL: 30 * time.Minute}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtSvc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	userID := uuid.New()
	roles := []string{"manager"}

	accessToken, refreshToken, err := jwtSvc.GenerateTokens(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := jwtSvc.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, roles, accessClaims.Roles)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := jwtSvc.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Nil(t, refreshClaims.Roles)
	assert.Equal(t, 30*time.Minute, jwtSvc.AccessTokenTTL())
}

func TestJWTService_RejectsWrongTokenType(t *testing.T) {
	jwtSvc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	accessToken, refreshToken, err := jwtSvc.GenerateTokens(uuid.New(), []string{"merchandiser"})
	require.NoError(t, err)

	_, err = jwtSvc.ValidateRefreshToken(accessToken)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))

	_, err = jwtSvc.ValidateAccessToken(refreshToken)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)
	impl := svc.(*jwtService)

	issued := time.Now().Add(-2 * time.Hour)
	impl.now = func() time.Time { return issued }
	token, err := impl.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ValidateAccessToken(token)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtSvc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	claims, err := jwtSvc.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtSvc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, jwtSvc)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}
