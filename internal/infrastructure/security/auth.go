// Package security provides JWT-based authentication services
package security

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kaloria/v1/internal/infrastructure/config"
	"github.com/kaloria/v1/internal/ports/outbound"
)

// TokenType represents different types of JWT tokens
type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// Sentinel errors for token validation failures.
var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrRevokedToken = errors.New("token has been revoked")
	ErrWrongType    = errors.New("unexpected token type")
)

// Claims represents JWT claims structure
type Claims struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// AuthService issues and validates token pairs. Revoked tokens live in
// the cache until their natural expiry.
type AuthService struct {
	config    *config.Config
	cache     outbound.CacheRepository
	logger    *zap.Logger
	jwtSecret []byte
}

// NewAuthService creates a new authentication service
func NewAuthService(cfg *config.Config, cache outbound.CacheRepository, logger *zap.Logger) *AuthService {
	return &AuthService{
		config:    cfg,
		cache:     cache,
		logger:    logger.Named("auth-service"),
		jwtSecret: []byte(cfg.Auth.JWTSecret),
	}
}

var _ outbound.TokenService = (*AuthService)(nil)

// IssueTokens creates an access/refresh token pair
func (a *AuthService) IssueTokens(ctx context.Context, userID uuid.UUID, email string, isAdmin bool) (*outbound.TokenPair, error) {
	access, err := a.generateToken(userID, email, isAdmin, AccessToken, a.config.Auth.JWTExpiration)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := a.generateToken(userID, email, isAdmin, RefreshToken, a.config.Auth.RefreshExpiration)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return &outbound.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(a.config.Auth.JWTExpiration.Seconds()),
	}, nil
}

// ValidateAccessToken parses and checks an access token
func (a *AuthService) ValidateAccessToken(ctx context.Context, token string) (*outbound.TokenClaims, error) {
	claims, err := a.parseToken(ctx, token, AccessToken)
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return &outbound.TokenClaims{
		UserID:  userID,
		Email:   claims.Email,
		IsAdmin: claims.IsAdmin,
	}, nil
}

// RefreshTokens exchanges a refresh token for a new pair. The used
// refresh token is revoked so it cannot be replayed.
func (a *AuthService) RefreshTokens(ctx context.Context, refreshToken string) (*outbound.TokenPair, error) {
	claims, err := a.parseToken(ctx, refreshToken, RefreshToken)
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if err := a.RevokeToken(ctx, refreshToken); err != nil {
		a.logger.Warn("Failed to revoke used refresh token", zap.Error(err))
	}

	return a.IssueTokens(ctx, userID, claims.Email, claims.IsAdmin)
}

// RevokeToken blacklists a token until it would have expired anyway
func (a *AuthService) RevokeToken(ctx context.Context, token string) error {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, a.keyFunc)
	if err != nil || !parsed.Valid {
		return ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.ID == "" {
		return ErrInvalidToken
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil // Already expired
	}
	return a.cache.Set(ctx, revocationKey(claims.ID), []byte("revoked"), ttl)
}

func (a *AuthService) generateToken(userID uuid.UUID, email string, isAdmin bool, tokenType TokenType, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID.String(),
		Email:     email,
		IsAdmin:   isAdmin,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "kaloria",
			Subject:   userID.String(),
			Audience:  []string{"kaloria-api"},
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.jwtSecret)
}

func (a *AuthService) parseToken(ctx context.Context, token string, expected TokenType) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, a.keyFunc)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != expected {
		return nil, ErrWrongType
	}

	revoked, err := a.cache.Exists(ctx, revocationKey(claims.ID))
	if err != nil {
		a.logger.Warn("Revocation check failed", zap.Error(err))
	} else if revoked {
		return nil, ErrRevokedToken
	}
	return claims, nil
}

func (a *AuthService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return a.jwtSecret, nil
}

func revocationKey(jti string) string {
	return "auth:revoked:" + jti
}
