// Package account provides the application layer for registration,
// authentication and profile management.
package account

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kaloria/v1/internal/domain/account"
	"github.com/kaloria/v1/internal/domain/health"
	"github.com/kaloria/v1/internal/ports/inbound"
	"github.com/kaloria/v1/internal/ports/outbound"
)

// metricsCacheTTL bounds staleness of cached health metrics; any
// measurement update invalidates the entry immediately.
const metricsCacheTTL = 15 * time.Minute

// Service implements the account use cases.
type Service struct {
	userRepo outbound.UserRepository
	tokens   outbound.TokenService
	cache    outbound.CacheRepository
	logger   *zap.Logger
}

// NewService creates a new account service.
func NewService(
	userRepo outbound.UserRepository,
	tokens outbound.TokenService,
	cache outbound.CacheRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		userRepo: userRepo,
		tokens:   tokens,
		cache:    cache,
		logger:   logger.Named("account-service"),
	}
}

var _ inbound.AccountService = (*Service)(nil)

// Register creates a new user account with its body measurements.
func (s *Service) Register(ctx context.Context, cmd inbound.RegisterCommand) (*inbound.UserDTO, error) {
	s.logger.Info("Registering new user", zap.String("email", cmd.Email))

	exists, err := s.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, account.ErrEmailExists
	}

	m := health.Measurements{
		HeightCm:       cmd.HeightCm,
		WeightKg:       cmd.WeightKg,
		Gender:         health.ParseGender(cmd.Gender),
		Age:            cmd.Age,
		ActivityLevel:  health.ActivityLevel(cmd.ActivityLevel),
		WaistCm:        cmd.WaistCm,
		NeckCm:         cmd.NeckCm,
		HipCm:          cmd.HipCm,
		TargetWeightKg: cmd.TargetWeightKg,
	}

	user, err := account.NewUser(cmd.Email, cmd.Name, cmd.Password, m)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.logger.Info("User registered",
		zap.String("user_id", user.ID().String()),
		zap.String("email", user.Email()),
	)
	dto := userToDTO(user)
	return &dto, nil
}

// Login authenticates a user and issues a token pair.
func (s *Service) Login(ctx context.Context, email, password string) (*inbound.AuthTokens, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		// Do not reveal whether the email is registered.
		return nil, account.ErrInvalidCredentials
	}
	if !user.IsActive() {
		return nil, account.ErrUserInactive
	}
	if err := user.CheckPassword(password); err != nil {
		return nil, err
	}

	user.RecordLogin()
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Warn("Failed to record login time", zap.Error(err))
	}

	pair, err := s.tokens.IssueTokens(ctx, user.ID(), user.Email(), user.IsAdmin())
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	s.logger.Info("User logged in", zap.String("user_id", user.ID().String()))
	return tokenPairToDTO(pair), nil
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*inbound.AuthTokens, error) {
	pair, err := s.tokens.RefreshTokens(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	return tokenPairToDTO(pair), nil
}

// Logout revokes the presented access token.
func (s *Service) Logout(ctx context.Context, accessToken string) error {
	return s.tokens.RevokeToken(ctx, accessToken)
}

// GetProfile returns the account and current measurements.
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*inbound.UserDTO, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	dto := userToDTO(user)
	return &dto, nil
}

// UpdateMeasurements applies a partial measurement update. Fields left
// nil keep their stored values; the merged result is re-validated.
func (s *Service) UpdateMeasurements(ctx context.Context, cmd inbound.UpdateMeasurementsCommand) (*inbound.UserDTO, error) {
	user, err := s.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	m := user.Measurements()
	if cmd.HeightCm != nil {
		m.HeightCm = *cmd.HeightCm
	}
	if cmd.WeightKg != nil {
		m.WeightKg = *cmd.WeightKg
	}
	if cmd.Age != nil {
		m.Age = *cmd.Age
	}
	if cmd.ActivityLevel != nil {
		m.ActivityLevel = health.ActivityLevel(*cmd.ActivityLevel)
	}
	if cmd.WaistCm != nil {
		m.WaistCm = *cmd.WaistCm
	}
	if cmd.NeckCm != nil {
		m.NeckCm = *cmd.NeckCm
	}
	if cmd.HipCm != nil {
		m.HipCm = cmd.HipCm
	}
	if cmd.TargetWeightKg != nil {
		m.TargetWeightKg = cmd.TargetWeightKg
	}

	if err := user.UpdateMeasurements(m); err != nil {
		return nil, err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save measurements: %w", err)
	}

	if err := s.cache.Delete(ctx, metricsCacheKey(user.ID())); err != nil {
		s.logger.Warn("Failed to invalidate metrics cache", zap.Error(err))
	}

	dto := userToDTO(user)
	return &dto, nil
}

// HealthMetrics computes BMI, body fat, BMR and TDEE for the user,
// serving from cache when the measurements have not changed.
func (s *Service) HealthMetrics(ctx context.Context, userID uuid.UUID) (*inbound.HealthMetricsDTO, error) {
	key := metricsCacheKey(userID)
	if raw, err := s.cache.Get(ctx, key); err == nil && raw != nil {
		var cached inbound.HealthMetricsDTO
		if json.Unmarshal(raw, &cached) == nil {
			return &cached, nil
		}
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	metrics, err := user.HealthMetrics()
	if err != nil {
		return nil, err
	}

	dto := &inbound.HealthMetricsDTO{
		BMI:            metrics.BMI,
		BodyFatPercent: metrics.BodyFatPercent,
		BMR:            metrics.BMR,
		TDEE:           metrics.TDEE,
	}
	if raw, err := json.Marshal(dto); err == nil {
		if err := s.cache.Set(ctx, key, raw, metricsCacheTTL); err != nil {
			s.logger.Debug("Failed to cache health metrics", zap.Error(err))
		}
	}
	return dto, nil
}

// ListUsers returns a page of all accounts. The HTTP layer restricts
// it to administrators.
func (s *Service) ListUsers(ctx context.Context, params inbound.PaginationParams) (*inbound.UserList, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PerPage < 1 || params.PerPage > 100 {
		params.PerPage = 20
	}

	users, total, err := s.userRepo.List(ctx, params.Offset(), params.PerPage)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	items := make([]inbound.UserDTO, 0, len(users))
	for _, u := range users {
		items = append(items, userToDTO(u))
	}
	pages := int(total) / params.PerPage
	if int(total)%params.PerPage != 0 {
		pages++
	}
	return &inbound.UserList{
		Items:      items,
		Total:      total,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: pages,
	}, nil
}

func metricsCacheKey(userID uuid.UUID) string {
	return "health:metrics:" + userID.String()
}

func tokenPairToDTO(pair *outbound.TokenPair) *inbound.AuthTokens {
	return &inbound.AuthTokens{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    pair.ExpiresIn,
	}
}

func userToDTO(u *account.User) inbound.UserDTO {
	m := u.Measurements()
	return inbound.UserDTO{
		ID:             u.ID(),
		Email:          u.Email(),
		Name:           u.Name(),
		IsActive:       u.IsActive(),
		IsAdmin:        u.IsAdmin(),
		HeightCm:       m.HeightCm,
		WeightKg:       m.WeightKg,
		Gender:         string(m.Gender),
		Age:            m.Age,
		ActivityLevel:  string(m.ActivityLevel),
		WaistCm:        m.WaistCm,
		NeckCm:         m.NeckCm,
		HipCm:          m.HipCm,
		TargetWeightKg: m.TargetWeightKg,
		CreatedAt:      u.CreatedAt(),
	}
}
