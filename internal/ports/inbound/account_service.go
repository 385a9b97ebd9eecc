// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AccountService defines the use cases for registration, authentication
// and profile management.
type AccountService interface {
	Register(ctx context.Context, cmd RegisterCommand) (*UserDTO, error)
	Login(ctx context.Context, email, password string) (*AuthTokens, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, accessToken string) error

	GetProfile(ctx context.Context, userID uuid.UUID) (*UserDTO, error)
	UpdateMeasurements(ctx context.Context, cmd UpdateMeasurementsCommand) (*UserDTO, error)
	HealthMetrics(ctx context.Context, userID uuid.UUID) (*HealthMetricsDTO, error)

	// ListUsers is restricted to administrators.
	ListUsers(ctx context.Context, params PaginationParams) (*UserList, error)
}

// RegisterCommand contains data for creating a new account.
type RegisterCommand struct {
	Email          string   `json:"email" validate:"required,email"`
	Name           string   `json:"name" validate:"required,min=1,max=100"`
	Password       string   `json:"password" validate:"required,min=8,max=128"`
	HeightCm       float64  `json:"height_cm" validate:"required,gt=0"`
	WeightKg       float64  `json:"weight_kg" validate:"required,gt=0"`
	Gender         string   `json:"gender" validate:"required"`
	Age            int      `json:"age" validate:"required,gt=0"`
	ActivityLevel  string   `json:"activity_level"`
	WaistCm        float64  `json:"waist_cm" validate:"required,gt=0"`
	NeckCm         float64  `json:"neck_cm" validate:"required,gt=0"`
	HipCm          *float64 `json:"hip_cm,omitempty"`
	TargetWeightKg *float64 `json:"target_weight_kg,omitempty"`
}

// UpdateMeasurementsCommand carries a partial measurement update; nil
// fields keep their stored values.
type UpdateMeasurementsCommand struct {
	UserID         uuid.UUID `json:"-"`
	HeightCm       *float64  `json:"height_cm,omitempty"`
	WeightKg       *float64  `json:"weight_kg,omitempty"`
	Age            *int      `json:"age,omitempty"`
	ActivityLevel  *string   `json:"activity_level,omitempty"`
	WaistCm        *float64  `json:"waist_cm,omitempty"`
	NeckCm         *float64  `json:"neck_cm,omitempty"`
	HipCm          *float64  `json:"hip_cm,omitempty"`
	TargetWeightKg *float64  `json:"target_weight_kg,omitempty"`
}

// UserDTO is the external representation of an account.
type UserDTO struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	IsActive       bool      `json:"is_active"`
	IsAdmin        bool      `json:"is_admin"`
	HeightCm       float64   `json:"height_cm"`
	WeightKg       float64   `json:"weight_kg"`
	Gender         string    `json:"gender"`
	Age            int       `json:"age"`
	ActivityLevel  string    `json:"activity_level"`
	WaistCm        float64   `json:"waist_cm"`
	NeckCm         float64   `json:"neck_cm"`
	HipCm          *float64  `json:"hip_cm,omitempty"`
	TargetWeightKg *float64  `json:"target_weight_kg,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// UserList is a paginated account listing.
type UserList struct {
	Items      []UserDTO `json:"items"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
	TotalPages int       `json:"total_pages"`
}

// HealthMetricsDTO carries the derived health numbers.
type HealthMetricsDTO struct {
	BMI            float64 `json:"bmi"`
	BodyFatPercent float64 `json:"body_fat_percent"`
	BMR            float64 `json:"bmr"`
	TDEE           float64 `json:"tdee"`
}

// AuthTokens is the pair issued on login and refresh.
type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}
