package services

import (
	"context"

	"github.com/jengabot/jenga_backend/internal/core/domain"
)

// OnboardingSvcFacade runs the guided first-use conversation. It intercepts
// every message from a profile whose setup is incomplete.
type OnboardingSvcFacade interface {
	// Begin creates the initial flow state for a freshly provisioned profile
	// and returns the welcome prompt.
	Begin(ctx context.Context, profileID string) (string, error)

	// HandleMessage advances the flow for one inbound message and returns the
	// next prompt. Unrecognized answers re-prompt the same step.
	HandleMessage(ctx context.Context, profile *domain.Profile, state *domain.OnboardingState, body string) (string, error)
}
