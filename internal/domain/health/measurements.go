// Package health contains the body-measurement domain and the derived
// metric calculations (BMI, body fat, BMR, TDEE). It is pure: no I/O,
// no persistence, no clock.
package health

import "strings"

// Gender is the biological sex used by the measurement formulas.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ParseGender normalizes a raw gender string. Any value other than "male"
// (case-insensitive) maps to GenderFemale, matching the behavior of the
// metric formulas which only branch on maleness.
func ParseGender(raw string) Gender {
	if strings.EqualFold(raw, string(GenderMale)) {
		return GenderMale
	}
	return GenderFemale
}

// IsMale reports whether the gender takes the male branch of the formulas.
func (g Gender) IsMale() bool {
	return strings.EqualFold(string(g), string(GenderMale))
}

// ActivityLevel is the ordinal activity tier used to scale BMR into TDEE.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary" // little or no exercise
	ActivityLight     ActivityLevel = "light"     // light exercise 1-3 days/week
	ActivityModerate  ActivityLevel = "moderate"  // moderate exercise 3-5 days/week
	ActivityVery      ActivityLevel = "very"      // heavy exercise 6-7 days/week
	ActivityAthlete   ActivityLevel = "athlete"   // professional athlete / 2x per day
)

// activityMultipliers is the single source of truth for TDEE scaling.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary: 1.20,
	ActivityLight:     1.375,
	ActivityModerate:  1.55,
	ActivityVery:      1.725,
	ActivityAthlete:   1.90,
}

// ValidActivityLevel reports whether the level is a known tier.
func ValidActivityLevel(level ActivityLevel) bool {
	_, ok := activityMultipliers[level]
	return ok
}

// Multiplier returns the TDEE multiplier for the level. Unknown levels fall
// back to the sedentary multiplier; this is a deliberate lenient default so
// that a stale or mistyped stored value degrades to the most conservative
// energy estimate instead of failing the whole computation.
func (a ActivityLevel) Multiplier() float64 {
	if m, ok := activityMultipliers[a]; ok {
		return m
	}
	return activityMultipliers[ActivitySedentary]
}

// Measurements is an identity-independent snapshot of a person's body
// measurements. It is a plain value: metric computation reads it and never
// mutates it, and derived metrics are never stored back.
type Measurements struct {
	HeightCm       float64
	WeightKg       float64
	Gender         Gender
	Age            int
	ActivityLevel  ActivityLevel
	WaistCm        float64
	NeckCm         float64
	HipCm          *float64 // required when Gender is female
	TargetWeightKg *float64
}

// Validate checks the structural invariants of a measurement set. The hip
// circumference must be present for female subjects; callers must reject the
// record rather than let the body-fat formula fail later.
func (m Measurements) Validate() error {
	if m.HeightCm <= 0 || m.WeightKg <= 0 {
		return ErrInvalidMeasurement
	}
	if m.Age <= 0 {
		return ErrInvalidMeasurement
	}
	if m.WaistCm <= 0 || m.NeckCm <= 0 {
		return ErrInvalidMeasurement
	}
	if !m.Gender.IsMale() && m.HipCm == nil {
		return ErrMissingMeasurement
	}
	return nil
}
