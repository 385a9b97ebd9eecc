package outbound

import (
	"context"

	"github.com/google/uuid"
)

// TokenPair is an issued access/refresh token set.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenClaims is the identity carried by a validated access token.
type TokenClaims struct {
	UserID  uuid.UUID
	Email   string
	IsAdmin bool
}

// TokenService issues, validates and revokes authentication tokens.
type TokenService interface {
	IssueTokens(ctx context.Context, userID uuid.UUID, email string, isAdmin bool) (*TokenPair, error)
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error)
	RevokeToken(ctx context.Context, token string) error
}
