// Package account defines the user aggregate: identity, credentials, and
// the body measurements that feed the health calculator.
package account

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kaloria/v1/internal/domain/health"
)

// User is the account aggregate. Derived health metrics are never stored
// on it; they are computed on demand from the measurement snapshot.
type User struct {
	id           uuid.UUID
	email        string
	name         string
	passwordHash string
	isActive     bool
	isAdmin      bool
	measurements health.Measurements
	createdAt    time.Time
	updatedAt    time.Time
	lastLoginAt  *time.Time
}

// NewUser creates a user with validated credentials and measurements.
// The measurement invariants (hip required for female, positive values)
// are enforced here so a stored user can always be measured.
func NewUser(email, name, password string, m health.Measurements) (*User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrPasswordHashing
	}

	now := time.Now()
	return &User{
		id:           uuid.New(),
		email:        strings.ToLower(email),
		name:         name,
		passwordHash: string(hash),
		isActive:     true,
		measurements: m,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstitute rebuilds a user from persisted state.
func Reconstitute(
	id uuid.UUID,
	email, name, passwordHash string,
	isActive, isAdmin bool,
	m health.Measurements,
	createdAt, updatedAt time.Time,
	lastLoginAt *time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		isActive:     isActive,
		isAdmin:      isAdmin,
		measurements: m,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		lastLoginAt:  lastLoginAt,
	}
}

func (u *User) ID() uuid.UUID                      { return u.id }
func (u *User) Email() string                      { return u.email }
func (u *User) Name() string                       { return u.name }
func (u *User) PasswordHash() string               { return u.passwordHash }
func (u *User) IsActive() bool                     { return u.isActive }
func (u *User) IsAdmin() bool                      { return u.isAdmin }
func (u *User) Measurements() health.Measurements  { return u.measurements }
func (u *User) CreatedAt() time.Time               { return u.createdAt }
func (u *User) UpdatedAt() time.Time               { return u.updatedAt }
func (u *User) LastLoginAt() *time.Time            { return u.lastLoginAt }

// CheckPassword verifies a candidate password against the stored hash.
func (u *User) CheckPassword(password string) error {
	if bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// UpdateMeasurements replaces the measurement snapshot after re-validating
// the combined result, so a partial update can never strip the hip value
// from a female profile.
func (u *User) UpdateMeasurements(m health.Measurements) error {
	if err := m.Validate(); err != nil {
		return err
	}
	u.measurements = m
	u.updatedAt = time.Now()
	return nil
}

// Rename updates the display name.
func (u *User) Rename(name string) {
	u.name = name
	u.updatedAt = time.Now()
}

// RecordLogin stamps a successful login.
func (u *User) RecordLogin() {
	now := time.Now()
	u.lastLoginAt = &now
	u.updatedAt = now
}

// HealthMetrics derives BMI, body fat, BMR and TDEE from the current
// measurement snapshot. Errors from the body-fat branch propagate unchanged.
func (u *User) HealthMetrics() (health.Metrics, error) {
	return health.ComputeMetrics(u.measurements)
}

func validateEmail(email string) error {
	if email == "" || !strings.Contains(email, "@") || len(email) > 255 {
		return ErrInvalidEmail
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 || len(password) > 128 {
		return ErrWeakPassword
	}
	return nil
}
