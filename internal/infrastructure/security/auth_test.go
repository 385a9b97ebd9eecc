package security

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/kaloria/v1/internal/infrastructure/config"
	"github.com/kaloria/v1/internal/infrastructure/persistence/memory"
)

// AuthServiceTestSuite provides a test suite for the auth service
type AuthServiceTestSuite struct {
	suite.Suite
	service *AuthService
	userID  uuid.UUID
}

func (suite *AuthServiceTestSuite) SetupTest() {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret-key-for-suite"
	cfg.Auth.JWTExpiration = time.Hour
	cfg.Auth.RefreshExpiration = 24 * time.Hour

	suite.service = NewAuthService(cfg, memory.NewCacheRepository(), zap.NewNop())
	suite.userID = uuid.New()
}

func (suite *AuthServiceTestSuite) TestTokenRoundtrip() {
	suite.Run("IssuedAccessToken_ShouldValidate", func() {
		pair, err := suite.service.IssueTokens(context.Background(), suite.userID, "user@example.com", false)
		require.NoError(suite.T(), err)
		require.NotEmpty(suite.T(), pair.AccessToken)
		require.NotEmpty(suite.T(), pair.RefreshToken)
		assert.Equal(suite.T(), int64(3600), pair.ExpiresIn)

		claims, err := suite.service.ValidateAccessToken(context.Background(), pair.AccessToken)
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), suite.userID, claims.UserID)
		assert.Equal(suite.T(), "user@example.com", claims.Email)
		assert.False(suite.T(), claims.IsAdmin)
	})

	suite.Run("RefreshToken_ShouldNotValidateAsAccess", func() {
		pair, err := suite.service.IssueTokens(context.Background(), suite.userID, "user@example.com", false)
		require.NoError(suite.T(), err)

		_, err = suite.service.ValidateAccessToken(context.Background(), pair.RefreshToken)
		assert.ErrorIs(suite.T(), err, ErrWrongType)
	})

	suite.Run("GarbageToken_ShouldBeInvalid", func() {
		_, err := suite.service.ValidateAccessToken(context.Background(), "not.a.token")
		assert.ErrorIs(suite.T(), err, ErrInvalidToken)
	})
}

func (suite *AuthServiceTestSuite) TestRevocation() {
	suite.Run("RevokedAccessToken_ShouldBeRejected", func() {
		pair, err := suite.service.IssueTokens(context.Background(), suite.userID, "user@example.com", false)
		require.NoError(suite.T(), err)

		require.NoError(suite.T(), suite.service.RevokeToken(context.Background(), pair.AccessToken))

		_, err = suite.service.ValidateAccessToken(context.Background(), pair.AccessToken)
		assert.ErrorIs(suite.T(), err, ErrRevokedToken)
	})

	suite.Run("UsedRefreshToken_ShouldNotBeReusable", func() {
		pair, err := suite.service.IssueTokens(context.Background(), suite.userID, "user@example.com", true)
		require.NoError(suite.T(), err)

		fresh, err := suite.service.RefreshTokens(context.Background(), pair.RefreshToken)
		require.NoError(suite.T(), err)
		assert.NotEmpty(suite.T(), fresh.AccessToken)

		claims, err := suite.service.ValidateAccessToken(context.Background(), fresh.AccessToken)
		require.NoError(suite.T(), err)
		assert.True(suite.T(), claims.IsAdmin)

		_, err = suite.service.RefreshTokens(context.Background(), pair.RefreshToken)
		assert.ErrorIs(suite.T(), err, ErrRevokedToken)
	})
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
