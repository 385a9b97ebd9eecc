package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/kaloria/v1/internal/domain/health"
)

func floatPtr(v float64) *float64 { return &v }

// UserTestSuite provides a test suite for the user aggregate
type UserTestSuite struct {
	suite.Suite
}

func (suite *UserTestSuite) maleMeasurements() health.Measurements {
	return health.Measurements{
		HeightCm:      180,
		WeightKg:      80,
		Gender:        health.GenderMale,
		Age:           35,
		ActivityLevel: health.ActivityLight,
		WaistCm:       90,
		NeckCm:        40,
	}
}

func (suite *UserTestSuite) femaleMeasurements() health.Measurements {
	return health.Measurements{
		HeightCm:      165,
		WeightKg:      60,
		Gender:        health.GenderFemale,
		Age:           28,
		ActivityLevel: health.ActivityModerate,
		WaistCm:       70,
		NeckCm:        32,
		HipCm:         floatPtr(95),
	}
}

func (suite *UserTestSuite) TestNewUser() {
	suite.Run("ValidMaleProfile_ShouldCreateSuccessfully", func() {
		user, err := NewUser("john@example.com", "John", "password123", suite.maleMeasurements())

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "john@example.com", user.Email())
		assert.True(suite.T(), user.IsActive())
		assert.False(suite.T(), user.IsAdmin())
		assert.NotEqual(suite.T(), "password123", user.PasswordHash())
	})

	suite.Run("EmailIsLowercased", func() {
		user, err := NewUser("Jane@Example.COM", "Jane", "password123", suite.femaleMeasurements())

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "jane@example.com", user.Email())
	})

	suite.Run("FemaleWithoutHip_ShouldFail", func() {
		m := suite.femaleMeasurements()
		m.HipCm = nil

		_, err := NewUser("jane@example.com", "Jane", "password123", m)

		assert.ErrorIs(suite.T(), err, health.ErrMissingMeasurement)
	})

	suite.Run("InvalidEmail_ShouldFail", func() {
		_, err := NewUser("not-an-email", "John", "password123", suite.maleMeasurements())

		assert.ErrorIs(suite.T(), err, ErrInvalidEmail)
	})

	suite.Run("ShortPassword_ShouldFail", func() {
		_, err := NewUser("john@example.com", "John", "short", suite.maleMeasurements())

		assert.ErrorIs(suite.T(), err, ErrWeakPassword)
	})
}

func (suite *UserTestSuite) TestCheckPassword() {
	user, err := NewUser("john@example.com", "John", "password123", suite.maleMeasurements())
	require.NoError(suite.T(), err)

	suite.Run("CorrectPassword_ShouldPass", func() {
		assert.NoError(suite.T(), user.CheckPassword("password123"))
	})

	suite.Run("WrongPassword_ShouldReturnInvalidCredentials", func() {
		assert.ErrorIs(suite.T(), user.CheckPassword("wrong-password"), ErrInvalidCredentials)
	})
}

func (suite *UserTestSuite) TestUpdateMeasurements() {
	suite.Run("ValidUpdate_ShouldReplaceSnapshot", func() {
		user, err := NewUser("john@example.com", "John", "password123", suite.maleMeasurements())
		require.NoError(suite.T(), err)

		m := user.Measurements()
		m.WeightKg = 78

		require.NoError(suite.T(), user.UpdateMeasurements(m))
		assert.InDelta(suite.T(), 78, user.Measurements().WeightKg, 0.001)
	})

	suite.Run("StrippingHipFromFemale_ShouldFail", func() {
		user, err := NewUser("jane@example.com", "Jane", "password123", suite.femaleMeasurements())
		require.NoError(suite.T(), err)

		m := user.Measurements()
		m.HipCm = nil

		assert.ErrorIs(suite.T(), user.UpdateMeasurements(m), health.ErrMissingMeasurement)
		assert.NotNil(suite.T(), user.Measurements().HipCm)
	})
}

func (suite *UserTestSuite) TestHealthMetrics() {
	suite.Run("DerivedFromCurrentSnapshot", func() {
		user, err := NewUser("john@example.com", "John", "password123", suite.maleMeasurements())
		require.NoError(suite.T(), err)

		metrics, err := user.HealthMetrics()

		require.NoError(suite.T(), err)
		assert.InDelta(suite.T(), 24.69, metrics.BMI, 0.001)
		assert.Greater(suite.T(), metrics.TDEE, metrics.BMR)
	})
}

func TestUserTestSuite(t *testing.T) {
	suite.Run(t, new(UserTestSuite))
}
