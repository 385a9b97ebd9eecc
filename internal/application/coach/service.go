// Package coach provides the application layer for the AI nutrition coach.
package coach

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kaloria/v1/internal/domain/account"
	"github.com/kaloria/v1/internal/domain/dietplan"
	"github.com/kaloria/v1/internal/ports/inbound"
	"github.com/kaloria/v1/internal/ports/outbound"
)

const systemPrompt = "You are a professional nutrition coach. Give practical, " +
	"evidence-based dietary advice tailored to the user's health profile. " +
	"Keep answers concise and avoid medical diagnoses."

// Service implements the AI coaching use cases. Every prompt carries
// the user's computed health metrics so answers stay grounded in the
// actual profile.
type Service struct {
	userRepo     outbound.UserRepository
	dietPlanRepo outbound.DietPlanRepository
	completer    outbound.TextCompleter
	logger       *zap.Logger
}

// NewService creates a new coach service.
func NewService(
	userRepo outbound.UserRepository,
	dietPlanRepo outbound.DietPlanRepository,
	completer outbound.TextCompleter,
	logger *zap.Logger,
) *Service {
	return &Service{
		userRepo:     userRepo,
		dietPlanRepo: dietPlanRepo,
		completer:    completer,
		logger:       logger.Named("coach-service"),
	}
}

var _ inbound.CoachService = (*Service)(nil)

// Chat answers a free-form question with health-profile context.
func (s *Service) Chat(ctx context.Context, userID uuid.UUID, message string) (string, error) {
	profile, err := s.profileContext(ctx, userID)
	if err != nil {
		return "", err
	}
	prompt := fmt.Sprintf("%s\n\nUser question: %s", profile, message)
	return s.complete(ctx, prompt)
}

// advicePrompts maps each advice topic to its instruction.
var advicePrompts = map[string]string{
	"general":    "Give this user three concrete lifestyle recommendations for reaching their target weight.",
	"diet":       "Give this user three concrete dietary recommendations for reaching their target weight.",
	"workout":    "Suggest a weekly workout routine matched to this user's activity level and goals.",
	"motivation": "Write a short motivational message tied to this user's progress toward their target weight.",
}

// Advice produces preset guidance from the profile alone. An empty
// topic falls back to general advice.
func (s *Service) Advice(ctx context.Context, userID uuid.UUID, topic string) (string, error) {
	instruction, ok := advicePrompts[topic]
	if !ok {
		instruction = advicePrompts["general"]
	}

	profile, err := s.profileContext(ctx, userID)
	if err != nil {
		return "", err
	}
	return s.complete(ctx, profile+"\n\n"+instruction)
}

// AnalyzeMeal evaluates a described meal against the user's targets.
func (s *Service) AnalyzeMeal(ctx context.Context, userID uuid.UUID, description string) (string, error) {
	profile, err := s.profileContext(ctx, userID)
	if err != nil {
		return "", err
	}
	prompt := fmt.Sprintf("%s\n\nThe user ate the following meal: %s\n\nEstimate its calories and macros and say how it fits their daily target.", profile, description)
	return s.complete(ctx, prompt)
}

// GenerateDietPlan produces a plan with the model and persists it.
func (s *Service) GenerateDietPlan(ctx context.Context, cmd inbound.GenerateDietPlanCommand) (*inbound.DietPlanDTO, error) {
	duration, err := dietplan.ParseDuration(cmd.Duration)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileContext(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf("%s\n\nWrite a %s diet plan for this user.", profile, duration)
	if cmd.Goals != "" {
		prompt += fmt.Sprintf(" Their stated goals: %s.", cmd.Goals)
	}

	content, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	plan, err := dietplan.NewPlan(cmd.UserID, cmd.Title, duration, content)
	if err != nil {
		return nil, err
	}
	if err := s.dietPlanRepo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to save diet plan: %w", err)
	}

	s.logger.Info("Diet plan generated",
		zap.String("user_id", cmd.UserID.String()),
		zap.String("plan_id", plan.ID().String()),
		zap.String("duration", string(duration)),
	)
	dto := planToDTO(plan)
	return &dto, nil
}

// ListDietPlans returns the user's stored plans, active only by default.
func (s *Service) ListDietPlans(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]inbound.DietPlanDTO, error) {
	status := dietplan.StatusActive
	if includeArchived {
		status = ""
	}
	plans, err := s.dietPlanRepo.ListByUser(ctx, userID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list diet plans: %w", err)
	}

	dtos := make([]inbound.DietPlanDTO, 0, len(plans))
	for _, p := range plans {
		dtos = append(dtos, planToDTO(p))
	}
	return dtos, nil
}

// GetDietPlan fetches one stored plan, scoped to its owner.
func (s *Service) GetDietPlan(ctx context.Context, userID, planID uuid.UUID) (*inbound.DietPlanDTO, error) {
	plan, err := s.ownedPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}
	dto := planToDTO(plan)
	return &dto, nil
}

// ArchiveDietPlan retires a stored plan.
func (s *Service) ArchiveDietPlan(ctx context.Context, userID, planID uuid.UUID) error {
	plan, err := s.ownedPlan(ctx, userID, planID)
	if err != nil {
		return err
	}
	if err := plan.Archive(); err != nil {
		return err
	}
	return s.dietPlanRepo.Update(ctx, plan)
}

func (s *Service) ownedPlan(ctx context.Context, userID, planID uuid.UUID) (*dietplan.Plan, error) {
	plan, err := s.dietPlanRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.UserID() != userID {
		return nil, dietplan.ErrPlanNotFound
	}
	return plan, nil
}

// profileContext renders the user's measurements and derived metrics
// into prompt text.
func (s *Service) profileContext(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return renderProfile(user), nil
}

func renderProfile(user *account.User) string {
	m := user.Measurements()
	profile := fmt.Sprintf(
		"User profile: %d years old, %s, %.1f cm, %.1f kg, activity level %s.",
		m.Age, m.Gender, m.HeightCm, m.WeightKg, m.ActivityLevel,
	)
	if m.TargetWeightKg != nil {
		profile += fmt.Sprintf(" Target weight: %.1f kg.", *m.TargetWeightKg)
	}
	if metrics, err := user.HealthMetrics(); err == nil {
		profile += fmt.Sprintf(
			" Computed metrics: BMI %.2f, body fat %.2f%%, BMR %.2f kcal, TDEE %.2f kcal.",
			metrics.BMI, metrics.BodyFatPercent, metrics.BMR, metrics.TDEE,
		)
	}
	return profile
}

func (s *Service) complete(ctx context.Context, prompt string) (string, error) {
	answer, err := s.completer.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		return "", fmt.Errorf("coach completion failed: %w", err)
	}
	return answer, nil
}

func planToDTO(p *dietplan.Plan) inbound.DietPlanDTO {
	return inbound.DietPlanDTO{
		ID:        p.ID(),
		Title:     p.Title(),
		Duration:  string(p.Duration()),
		Content:   p.Content(),
		Status:    string(p.Status()),
		CreatedAt: p.CreatedAt(),
	}
}
