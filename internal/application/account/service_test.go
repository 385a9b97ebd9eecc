package account

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/kaloria/v1/internal/domain/account"
	"github.com/kaloria/v1/internal/infrastructure/persistence/memory"
	"github.com/kaloria/v1/internal/ports/inbound"
	"github.com/kaloria/v1/internal/ports/outbound"
)

type fakeUserRepo struct {
	users   map[uuid.UUID]*account.User
	byEmail map[string]*account.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:   map[uuid.UUID]*account.User{},
		byEmail: map[string]*account.User{},
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *account.User) error {
	if _, ok := f.byEmail[user.Email()]; ok {
		return account.ErrEmailExists
	}
	f.users[user.ID()] = user
	f.byEmail[user.Email()] = user
	return nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *account.User) error {
	f.users[user.ID()] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*account.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, account.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*account.User, error) {
	user, ok := f.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, account.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := f.byEmail[strings.ToLower(email)]
	return ok, nil
}

func (f *fakeUserRepo) List(ctx context.Context, offset, limit int) ([]*account.User, int64, error) {
	users := make([]*account.User, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, u)
	}
	return users, int64(len(users)), nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.users, id)
	return nil
}

// fakeTokenService counts issued pairs so tests can see cache hits on
// the auth flow.
type fakeTokenService struct {
	issued  int
	revoked []string
}

func (f *fakeTokenService) IssueTokens(ctx context.Context, userID uuid.UUID, email string, isAdmin bool) (*outbound.TokenPair, error) {
	f.issued++
	return &outbound.TokenPair{AccessToken: "access-" + email, RefreshToken: "refresh-" + email, ExpiresIn: 3600}, nil
}

func (f *fakeTokenService) ValidateAccessToken(ctx context.Context, token string) (*outbound.TokenClaims, error) {
	return nil, nil
}

func (f *fakeTokenService) RefreshTokens(ctx context.Context, refreshToken string) (*outbound.TokenPair, error) {
	f.issued++
	return &outbound.TokenPair{AccessToken: "access-new", RefreshToken: "refresh-new", ExpiresIn: 3600}, nil
}

func (f *fakeTokenService) RevokeToken(ctx context.Context, token string) error {
	f.revoked = append(f.revoked, token)
	return nil
}

// AccountServiceTestSuite provides a test suite for the account service
type AccountServiceTestSuite struct {
	suite.Suite
	userRepo *fakeUserRepo
	tokens   *fakeTokenService
	service  *Service
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.userRepo = newFakeUserRepo()
	suite.tokens = &fakeTokenService{}
	suite.service = NewService(suite.userRepo, suite.tokens, memory.NewCacheRepository(), zap.NewNop())
}

func (suite *AccountServiceTestSuite) registerCommand() inbound.RegisterCommand {
	return inbound.RegisterCommand{
		Email:         "Test@Example.com",
		Name:          "Test User",
		Password:      "password123",
		HeightCm:      175,
		WeightKg:      70,
		Gender:        "male",
		Age:           30,
		ActivityLevel: "moderate",
		WaistCm:       85,
		NeckCm:        38,
	}
}

func (suite *AccountServiceTestSuite) TestRegister() {
	suite.Run("ValidCommand_ShouldCreateUser", func() {
		dto, err := suite.service.Register(context.Background(), suite.registerCommand())
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "test@example.com", dto.Email)
		assert.Equal(suite.T(), "Test User", dto.Name)
		assert.True(suite.T(), dto.IsActive)
		assert.NotEqual(suite.T(), uuid.Nil, dto.ID)
	})

	suite.Run("DuplicateEmail_ShouldFail", func() {
		_, err := suite.service.Register(context.Background(), suite.registerCommand())
		assert.ErrorIs(suite.T(), err, account.ErrEmailExists)
	})

	suite.Run("WeakPassword_ShouldFail", func() {
		cmd := suite.registerCommand()
		cmd.Email = "other@example.com"
		cmd.Password = "short"
		_, err := suite.service.Register(context.Background(), cmd)
		assert.ErrorIs(suite.T(), err, account.ErrWeakPassword)
	})
}

func (suite *AccountServiceTestSuite) TestLogin() {
	_, err := suite.service.Register(context.Background(), suite.registerCommand())
	require.NoError(suite.T(), err)

	suite.Run("ValidCredentials_ShouldIssueTokens", func() {
		tokens, err := suite.service.Login(context.Background(), "test@example.com", "password123")
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "Bearer", tokens.TokenType)
		assert.NotEmpty(suite.T(), tokens.AccessToken)
		assert.Equal(suite.T(), 1, suite.tokens.issued)
	})

	suite.Run("WrongPassword_ShouldFail", func() {
		_, err := suite.service.Login(context.Background(), "test@example.com", "wrong-password")
		assert.ErrorIs(suite.T(), err, account.ErrInvalidCredentials)
	})

	suite.Run("UnknownEmail_ShouldNotRevealExistence", func() {
		_, err := suite.service.Login(context.Background(), "nobody@example.com", "password123")
		assert.ErrorIs(suite.T(), err, account.ErrInvalidCredentials)
	})
}

func (suite *AccountServiceTestSuite) TestLogout() {
	err := suite.service.Logout(context.Background(), "some-access-token")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"some-access-token"}, suite.tokens.revoked)
}

func (suite *AccountServiceTestSuite) TestHealthMetrics() {
	dto, err := suite.service.Register(context.Background(), suite.registerCommand())
	require.NoError(suite.T(), err)

	suite.Run("KnownUser_ShouldComputeMetrics", func() {
		metrics, err := suite.service.HealthMetrics(context.Background(), dto.ID)
		require.NoError(suite.T(), err)
		assert.InDelta(suite.T(), 22.86, metrics.BMI, 0.001)
		assert.InDelta(suite.T(), 1648.75, metrics.BMR, 0.001)
		// 1648.75 * 1.55 = 2555.5625, rounded to two decimals.
		assert.InDelta(suite.T(), 2555.56, metrics.TDEE, 0.001)
	})

	suite.Run("SecondCall_ShouldServeFromCache", func() {
		// Mutate the stored user without going through the service;
		// the cached metrics must still be returned.
		user := suite.userRepo.users[dto.ID]
		m := user.Measurements()
		m.WeightKg = 90
		require.NoError(suite.T(), user.UpdateMeasurements(m))

		metrics, err := suite.service.HealthMetrics(context.Background(), dto.ID)
		require.NoError(suite.T(), err)
		assert.InDelta(suite.T(), 22.86, metrics.BMI, 0.001)
	})

	suite.Run("UnknownUser_ShouldFail", func() {
		_, err := suite.service.HealthMetrics(context.Background(), uuid.New())
		assert.ErrorIs(suite.T(), err, account.ErrUserNotFound)
	})
}

func (suite *AccountServiceTestSuite) TestUpdateMeasurements() {
	dto, err := suite.service.Register(context.Background(), suite.registerCommand())
	require.NoError(suite.T(), err)

	_, err = suite.service.HealthMetrics(context.Background(), dto.ID)
	require.NoError(suite.T(), err)

	suite.Run("PartialUpdate_ShouldMergeAndInvalidateCache", func() {
		weight := 80.0
		updated, err := suite.service.UpdateMeasurements(context.Background(), inbound.UpdateMeasurementsCommand{
			UserID:   dto.ID,
			WeightKg: &weight,
		})
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 80.0, updated.WeightKg)
		assert.Equal(suite.T(), 175.0, updated.HeightCm)

		metrics, err := suite.service.HealthMetrics(context.Background(), dto.ID)
		require.NoError(suite.T(), err)
		assert.InDelta(suite.T(), 26.12, metrics.BMI, 0.001)
	})

	suite.Run("InvalidUpdate_ShouldKeepStoredValues", func() {
		height := -10.0
		_, err := suite.service.UpdateMeasurements(context.Background(), inbound.UpdateMeasurementsCommand{
			UserID:   dto.ID,
			HeightCm: &height,
		})
		require.Error(suite.T(), err)

		profile, err := suite.service.GetProfile(context.Background(), dto.ID)
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 175.0, profile.HeightCm)
	})
}

func (suite *AccountServiceTestSuite) TestListUsers() {
	_, err := suite.service.Register(context.Background(), suite.registerCommand())
	require.NoError(suite.T(), err)

	list, err := suite.service.ListUsers(context.Background(), inbound.PaginationParams{})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), list.Total)
	require.Len(suite.T(), list.Items, 1)
	assert.Equal(suite.T(), "test@example.com", list.Items[0].Email)
	assert.False(suite.T(), list.Items[0].IsAdmin)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
