package domain

import "time"

// OnboardingStep is one stop in the guided first-use conversation. The flow
// is linear: none -> project type -> location -> start date -> budget ->
// confirmation -> completed. There are no cycles.
type OnboardingStep string

const (
	StepNone         OnboardingStep = ""
	StepProjectType  OnboardingStep = "awaiting_project_type"
	StepLocation     OnboardingStep = "awaiting_location"
	StepStartDate    OnboardingStep = "awaiting_start_date"
	StepBudget       OnboardingStep = "awaiting_budget"
	StepConfirmation OnboardingStep = "confirmation"
	StepCompleted    OnboardingStep = "completed"
)

// OnboardingData accumulates the owner's answers. Every field is optional
// until the confirmation step.
type OnboardingData struct {
	ProjectType string `json:"projectType,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	Budget      string `json:"budget,omitempty"`
}

// OnboardingState is the persisted per-profile position in the flow.
type OnboardingState struct {
	ProfileID   string         `json:"profileID"`
	Step        OnboardingStep `json:"step"`
	Data        OnboardingData `json:"data"`
	CompletedAt *time.Time     `json:"completedAt,omitempty"`
	AuditFields
}

// NeedsOnboarding is the single authority for "does this profile still need
// the setup conversation". CompletedAt, not Step, decides: once it is set the
// state machine is permanently bypassed even if Step is later overwritten.
func (s *OnboardingState) NeedsOnboarding() bool {
	return s == nil || s.CompletedAt == nil
}
