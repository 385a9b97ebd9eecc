package health

import "errors"

// Domain errors for metric computation

var (
	// ErrMissingMeasurement indicates a required measurement is absent,
	// e.g. hip circumference for a female body-fat calculation.
	ErrMissingMeasurement = errors.New("required body measurement is missing")

	// ErrInvalidMeasurement indicates a measurement combination outside the
	// domain of a formula, e.g. waist minus neck not positive so the
	// logarithm in the Navy method is undefined.
	ErrInvalidMeasurement = errors.New("body measurements are out of the valid range")
)
