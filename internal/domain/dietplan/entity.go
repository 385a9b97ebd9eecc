// Package dietplan holds AI-generated diet plans persisted for later review.
package dietplan

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPlanNotFound    = errors.New("diet plan not found")
	ErrInvalidDuration = errors.New("plan duration must be daily, weekly or monthly")
	ErrEmptyContent    = errors.New("plan content must not be empty")
	ErrAlreadyArchived = errors.New("diet plan is already archived")
)

// Duration is the coverage window of a generated plan.
type Duration string

const (
	DurationDaily   Duration = "daily"
	DurationWeekly  Duration = "weekly"
	DurationMonthly Duration = "monthly"
)

// ParseDuration validates a raw duration string.
func ParseDuration(raw string) (Duration, error) {
	switch Duration(raw) {
	case DurationDaily, DurationWeekly, DurationMonthly:
		return Duration(raw), nil
	default:
		return "", ErrInvalidDuration
	}
}

// Status tracks a plan's lifecycle.
type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

// Plan is a stored AI-generated diet plan for one user.
type Plan struct {
	id        uuid.UUID
	userID    uuid.UUID
	title     string
	duration  Duration
	content   string
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewPlan creates an active plan from generated content.
func NewPlan(userID uuid.UUID, title string, duration Duration, content string) (*Plan, error) {
	if _, err := ParseDuration(string(duration)); err != nil {
		return nil, err
	}
	if content == "" {
		return nil, ErrEmptyContent
	}
	now := time.Now()
	return &Plan{
		id:        uuid.New(),
		userID:    userID,
		title:     title,
		duration:  duration,
		content:   content,
		status:    StatusActive,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstitutePlan rebuilds a plan from persisted state.
func ReconstitutePlan(id, userID uuid.UUID, title string, duration Duration, content string, status Status, createdAt, updatedAt time.Time) *Plan {
	return &Plan{
		id:        id,
		userID:    userID,
		title:     title,
		duration:  duration,
		content:   content,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (p *Plan) ID() uuid.UUID        { return p.id }
func (p *Plan) UserID() uuid.UUID    { return p.userID }
func (p *Plan) Title() string        { return p.title }
func (p *Plan) Duration() Duration   { return p.duration }
func (p *Plan) Content() string      { return p.content }
func (p *Plan) Status() Status       { return p.status }
func (p *Plan) CreatedAt() time.Time { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time { return p.updatedAt }

// Archive retires the plan. Archiving twice is an error.
func (p *Plan) Archive() error {
	if p.status == StatusArchived {
		return ErrAlreadyArchived
	}
	p.status = StatusArchived
	p.updatedAt = time.Now()
	return nil
}
