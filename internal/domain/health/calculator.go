package health

import "math"

// Metrics holds the four derived health indicators for one measurement set.
type Metrics struct {
	BMI            float64 `json:"bmi"`
	BodyFatPercent float64 `json:"body_fat_percent"`
	BMR            float64 `json:"bmr"`
	TDEE           float64 `json:"tdee"`
}

// BMI computes the Body Mass Index: weight (kg) / height (m)², rounded to
// two decimals. Positivity of the inputs is assumed to have been validated
// upstream.
func BMI(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	return round2(weightKg / (heightM * heightM))
}

// BodyFat estimates body fat percentage with the U.S. Navy circumference
// method. The female branch requires a hip measurement and returns
// ErrMissingMeasurement without one. When the circumference delta feeding
// the logarithm is not positive the formula is undefined and
// ErrInvalidMeasurement is returned instead of a NaN leaking out.
func BodyFat(gender Gender, waistCm, neckCm, heightCm float64, hipCm *float64) (float64, error) {
	if gender.IsMale() {
		girth := waistCm - neckCm
		if girth <= 0 || heightCm <= 0 {
			return 0, ErrInvalidMeasurement
		}
		bf := 495/(1.0324-0.19077*math.Log10(girth)+0.15456*math.Log10(heightCm)) - 450
		return round2(bf), nil
	}

	if hipCm == nil {
		return 0, ErrMissingMeasurement
	}
	girth := waistCm + *hipCm - neckCm
	if girth <= 0 || heightCm <= 0 {
		return 0, ErrInvalidMeasurement
	}
	bf := 495/(1.29579-0.35004*math.Log10(girth)+0.22100*math.Log10(heightCm)) - 450
	return round2(bf), nil
}

// BMR computes the Basal Metabolic Rate with the Mifflin-St Jeor equation:
// 10·weight + 6.25·height - 5·age + s, where s is +5 for male and -161
// otherwise. Gender matching is case-insensitive and any non-male value
// takes the female branch.
func BMR(weightKg, heightCm float64, age int, gender Gender) float64 {
	s := -161.0
	if gender.IsMale() {
		s = 5.0
	}
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age) + s
	return round2(bmr)
}

// TDEE scales a BMR by the activity multiplier. Unknown activity levels use
// the sedentary multiplier (see ActivityLevel.Multiplier).
func TDEE(bmr float64, level ActivityLevel) float64 {
	return round2(bmr * level.Multiplier())
}

// ComputeMetrics derives all four metrics from one measurement set.
// Body-fat errors propagate unchanged; the caller decides presentation.
func ComputeMetrics(m Measurements) (Metrics, error) {
	bodyFat, err := BodyFat(m.Gender, m.WaistCm, m.NeckCm, m.HeightCm, m.HipCm)
	if err != nil {
		return Metrics{}, err
	}

	bmr := BMR(m.WeightKg, m.HeightCm, m.Age, m.Gender)
	return Metrics{
		BMI:            BMI(m.WeightKg, m.HeightCm),
		BodyFatPercent: bodyFat,
		BMR:            bmr,
		TDEE:           TDEE(bmr, m.ActivityLevel),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
