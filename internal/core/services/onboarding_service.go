package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jengabot/jenga_backend/internal/core/domain"
	"github.com/jengabot/jenga_backend/internal/core/intent"
	portsrepo "github.com/jengabot/jenga_backend/internal/core/ports/repositories"
	portssvc "github.com/jengabot/jenga_backend/internal/core/ports/services"
)

const (
	promptWelcome = "Welcome to Jenga! 🏗️ Let's set up your construction project.\n\n" +
		"What type of project are you building?\n" +
		"1. Residential house\n" +
		"2. Commercial building\n" +
		"3. Renovation\n\n" +
		"Reply with a number."

	promptLocation  = "Great choice! 📍 Where is the project located? (e.g. Kololo, Kampala)"
	promptStartDate = "When did (or will) construction start? Reply \"today\" or a date like 2026-03-01."
	promptBudget    = "What is your total project budget? (e.g. 50,000,000)"

	onboardingDoneNoProject = "No problem! You can finish setting up your project any time from the dashboard. " +
		"Send me a message like \"spent 50000 on cement\" once you're ready."
)

var projectTypeOptions = map[string]string{
	"1":           "Residential house",
	"2":           "Commercial building",
	"3":           "Renovation",
	"residential": "Residential house",
	"commercial":  "Commercial building",
	"renovation":  "Renovation",
}

// OnboardingService is the multi-step setup state machine. The flow is
// linear; unrecognized answers re-prompt the current step instead of
// advancing.
type OnboardingService struct {
	onboardingRepo portsrepo.OnboardingRepositoryFacade
	projectRepo    portsrepo.ProjectRepositoryFacade
}

var _ portssvc.OnboardingSvcFacade = (*OnboardingService)(nil)

// NewOnboardingService creates a new OnboardingService.
func NewOnboardingService(onboardingRepo portsrepo.OnboardingRepositoryFacade, projectRepo portsrepo.ProjectRepositoryFacade) *OnboardingService {
	return &OnboardingService{
		onboardingRepo: onboardingRepo,
		projectRepo:    projectRepo,
	}
}

// Begin creates the initial flow state for a freshly provisioned profile. A
// brand-new number always enters at the project-type question.
func (s *OnboardingService) Begin(ctx context.Context, profileID string) (string, error) {
	now := time.Now()
	state := domain.OnboardingState{
		ProfileID: profileID,
		Step:      domain.StepProjectType,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.onboardingRepo.SaveOnboardingState(ctx, state); err != nil {
		return "", fmt.Errorf("failed to start onboarding: %w", err)
	}
	return promptWelcome, nil
}

// HandleMessage advances the flow for one inbound message.
func (s *OnboardingService) HandleMessage(ctx context.Context, profile *domain.Profile, state *domain.OnboardingState, body string) (string, error) {
	if state == nil {
		return s.Begin(ctx, profile.ProfileID)
	}
	if !state.NeedsOnboarding() {
		// Completed profiles never re-enter the flow; the caller should not
		// have routed here.
		return "", nil
	}

	answer := strings.TrimSpace(body)
	reply := ""

	switch state.Step {
	case domain.StepNone:
		state.Step = domain.StepProjectType
		reply = promptWelcome

	case domain.StepProjectType:
		projectType, ok := projectTypeOptions[strings.ToLower(answer)]
		if !ok {
			return promptWelcome, nil
		}
		state.Data.ProjectType = projectType
		state.Step = domain.StepLocation
		reply = promptLocation

	case domain.StepLocation:
		if answer == "" {
			return promptLocation, nil
		}
		state.Data.Location = answer
		state.Step = domain.StepStartDate
		reply = promptStartDate

	case domain.StepStartDate:
		if answer == "" {
			return promptStartDate, nil
		}
		state.Data.StartDate = answer
		state.Step = domain.StepBudget
		reply = promptBudget

	case domain.StepBudget:
		amount := intent.ParseAmount(answer)
		if !amount.IsPositive() {
			return promptBudget, nil
		}
		state.Data.Budget = amount.String()
		state.Step = domain.StepConfirmation
		reply = confirmationPrompt(state.Data)

	case domain.StepConfirmation:
		return s.handleConfirmation(ctx, profile, state, answer)

	default:
		return promptWelcome, nil
	}

	state.LastUpdatedAt = time.Now()
	if err := s.onboardingRepo.SaveOnboardingState(ctx, *state); err != nil {
		return "", fmt.Errorf("failed to save onboarding state: %w", err)
	}
	return reply, nil
}

func (s *OnboardingService) handleConfirmation(ctx context.Context, profile *domain.Profile, state *domain.OnboardingState, answer string) (string, error) {
	lower := strings.ToLower(answer)

	switch {
	case strings.Contains(lower, "yes") || strings.Contains(lower, "confirm") || strings.Contains(lower, "1"):
		if err := s.createProject(ctx, profile, state.Data); err != nil {
			return "", fmt.Errorf("failed to create project from onboarding: %w", err)
		}
		if err := s.complete(ctx, state); err != nil {
			return "", err
		}
		return fmt.Sprintf("🎉 Your project \"%s\" in %s is ready! Send me expenses like \"spent 50000 on cement\" and I'll keep the books.",
			state.Data.ProjectType, state.Data.Location), nil

	case strings.Contains(lower, "edit") || strings.Contains(lower, "later"):
		// Skip project creation; the dashboard takes over from here.
		if err := s.complete(ctx, state); err != nil {
			return "", err
		}
		return onboardingDoneNoProject, nil

	default:
		return confirmationPrompt(state.Data), nil
	}
}

func (s *OnboardingService) complete(ctx context.Context, state *domain.OnboardingState) error {
	now := time.Now()
	state.Step = domain.StepCompleted
	state.CompletedAt = &now
	state.LastUpdatedAt = now
	if err := s.onboardingRepo.SaveOnboardingState(ctx, *state); err != nil {
		return fmt.Errorf("failed to complete onboarding: %w", err)
	}
	return nil
}

func (s *OnboardingService) createProject(ctx context.Context, profile *domain.Profile, data domain.OnboardingData) error {
	now := time.Now()
	budget, err := decimal.NewFromString(strings.ReplaceAll(data.Budget, ",", ""))
	if err != nil {
		budget = decimal.Zero
	}

	project := domain.Project{
		ProjectID:    uuid.NewString(),
		ProfileID:    profile.ProfileID,
		Name:         fmt.Sprintf("%s - %s", data.ProjectType, data.Location),
		ProjectType:  data.ProjectType,
		Location:     data.Location,
		StartDate:    parseStartDate(data.StartDate, now),
		BudgetAmount: budget,
		CurrencyCode: intent.DefaultCurrency,
		Status:       domain.ProjectActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	return s.projectRepo.SaveProject(ctx, project)
}

func confirmationPrompt(data domain.OnboardingData) string {
	return fmt.Sprintf("Here's what I have:\n🏗️ %s\n📍 %s\n📅 %s\n💰 %s\n\n"+
		"Reply \"confirm\" to create the project, or \"later\" to finish on the dashboard.",
		data.ProjectType, data.Location, data.StartDate, data.Budget)
}

func parseStartDate(raw string, now time.Time) *time.Time {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if lower == "today" || lower == "leero" {
		return &now
	}
	for _, layout := range []string{"2006-01-02", "02/01/2006", "2 January 2006"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
