package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func floatPtr(v float64) *float64 { return &v }

// CalculatorTestSuite provides a test suite for the health calculator
type CalculatorTestSuite struct {
	suite.Suite
}

func (suite *CalculatorTestSuite) TestBMI() {
	suite.Run("StandardValues_ShouldRoundToTwoDecimals", func() {
		bmi := BMI(70, 170)

		assert.InDelta(suite.T(), 24.22, bmi, 0.001)
	})

	suite.Run("TallLightProfile_ShouldComputeLowBMI", func() {
		bmi := BMI(55, 190)

		assert.InDelta(suite.T(), 15.24, bmi, 0.001)
	})
}

func (suite *CalculatorTestSuite) TestBodyFat() {
	suite.Run("Male_ShouldNotRequireHip", func() {
		bf, err := BodyFat(GenderMale, 85, 38, 175, nil)

		require.NoError(suite.T(), err)
		assert.Greater(suite.T(), bf, 0.0)
		assert.Less(suite.T(), bf, 60.0)
	})

	suite.Run("FemaleWithHip_ShouldComputeSuccessfully", func() {
		bf, err := BodyFat(GenderFemale, 75, 33, 165, floatPtr(95))

		require.NoError(suite.T(), err)
		assert.Greater(suite.T(), bf, 0.0)
	})

	suite.Run("FemaleWithoutHip_ShouldReturnMissingMeasurement", func() {
		_, err := BodyFat(GenderFemale, 75, 33, 165, nil)

		assert.ErrorIs(suite.T(), err, ErrMissingMeasurement)
	})

	suite.Run("WaistNotLargerThanNeck_ShouldReturnInvalidMeasurement", func() {
		// waist - neck <= 0 leaves the male formula without a valid
		// logarithm argument.
		_, err := BodyFat(GenderMale, 38, 38, 175, nil)

		assert.ErrorIs(suite.T(), err, ErrInvalidMeasurement)
	})

	suite.Run("NonPositiveGirth_ShouldReturnInvalidMeasurement", func() {
		_, err := BodyFat(GenderMale, 0, 38, 175, nil)

		assert.ErrorIs(suite.T(), err, ErrInvalidMeasurement)
	})
}

func (suite *CalculatorTestSuite) TestBMR() {
	suite.Run("Male_ShouldAddFiveToBase", func() {
		bmr := BMR(70, 175, 30, GenderMale)

		// 10*70 + 6.25*175 - 5*30 + 5
		assert.InDelta(suite.T(), 1648.75, bmr, 0.001)
	})

	suite.Run("Female_ShouldSubtract161FromBase", func() {
		bmr := BMR(70, 175, 30, GenderFemale)

		assert.InDelta(suite.T(), 1482.75, bmr, 0.001)
	})

	suite.Run("MaleAndFemale_ShouldDifferByFixedOffset", func() {
		male := BMR(62.5, 168, 41, GenderMale)
		female := BMR(62.5, 168, 41, GenderFemale)

		assert.InDelta(suite.T(), 166, male-female, 0.001)
	})
}

func (suite *CalculatorTestSuite) TestTDEE() {
	suite.Run("ModerateActivity_ShouldMultiplyBy155Percent", func() {
		tdee := TDEE(1000, ActivityModerate)

		assert.InDelta(suite.T(), 1550, tdee, 0.001)
	})

	suite.Run("UnknownLevel_ShouldFallBackToSedentary", func() {
		tdee := TDEE(1000, ActivityLevel("couch"))

		assert.InDelta(suite.T(), 1200, tdee, 0.001)
	})

	suite.Run("AllLevels_ShouldUseCanonicalMultipliers", func() {
		cases := map[ActivityLevel]float64{
			ActivitySedentary: 1.20,
			ActivityLight:     1.375,
			ActivityModerate:  1.55,
			ActivityVery:      1.725,
			ActivityAthlete:   1.90,
		}
		for level, multiplier := range cases {
			assert.InDelta(suite.T(), 2000*multiplier, TDEE(2000, level), 0.001,
				"level %s", level)
		}
	})
}

func (suite *CalculatorTestSuite) TestComputeMetrics() {
	suite.Run("CompleteMaleProfile_ShouldDeriveAllMetrics", func() {
		m := Measurements{
			HeightCm:      175,
			WeightKg:      70,
			Gender:        GenderMale,
			Age:           30,
			ActivityLevel: ActivityModerate,
			WaistCm:       85,
			NeckCm:        38,
		}

		metrics, err := ComputeMetrics(m)

		require.NoError(suite.T(), err)
		assert.InDelta(suite.T(), 22.86, metrics.BMI, 0.001)
		assert.InDelta(suite.T(), 1648.75, metrics.BMR, 0.001)
		assert.InDelta(suite.T(), 1648.75*1.55, metrics.TDEE, 0.01)
		assert.Greater(suite.T(), metrics.BodyFatPercent, 0.0)
	})

	suite.Run("FemaleWithoutHip_ShouldPropagateMissingMeasurement", func() {
		m := Measurements{
			HeightCm:      165,
			WeightKg:      60,
			Gender:        GenderFemale,
			Age:           28,
			ActivityLevel: ActivityLight,
			WaistCm:       70,
			NeckCm:        32,
		}

		_, err := ComputeMetrics(m)

		assert.ErrorIs(suite.T(), err, ErrMissingMeasurement)
	})
}

func (suite *CalculatorTestSuite) TestParseGender() {
	suite.Run("CaseInsensitiveMale", func() {
		for _, raw := range []string{"male", "Male", "MALE"} {
			assert.Equal(suite.T(), GenderMale, ParseGender(raw))
		}
	})

	suite.Run("AnythingElse_ShouldBeFemale", func() {
		assert.Equal(suite.T(), GenderFemale, ParseGender("female"))
		assert.Equal(suite.T(), GenderFemale, ParseGender("other"))
	})
}

func (suite *CalculatorTestSuite) TestMeasurementsValidate() {
	valid := Measurements{
		HeightCm:      170,
		WeightKg:      65,
		Gender:        GenderFemale,
		Age:           25,
		ActivityLevel: ActivitySedentary,
		WaistCm:       70,
		NeckCm:        32,
		HipCm:         floatPtr(95),
	}

	suite.Run("ValidProfile_ShouldPass", func() {
		assert.NoError(suite.T(), valid.Validate())
	})

	suite.Run("FemaleWithoutHip_ShouldFail", func() {
		m := valid
		m.HipCm = nil

		assert.ErrorIs(suite.T(), m.Validate(), ErrMissingMeasurement)
	})

	suite.Run("NonPositiveValues_ShouldFail", func() {
		m := valid
		m.WeightKg = 0

		assert.ErrorIs(suite.T(), m.Validate(), ErrInvalidMeasurement)
	})
}

func TestCalculatorTestSuite(t *testing.T) {
	suite.Run(t, new(CalculatorTestSuite))
}
