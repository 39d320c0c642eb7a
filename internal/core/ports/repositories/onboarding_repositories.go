package repositories

import (
	"context"

	"github.com/jengabot/jenga_backend/internal/core/domain"
)

// OnboardingReader defines read operations for onboarding state.
type OnboardingReader interface {
	// FindOnboardingState retrieves the profile's persisted flow position.
	// Returns apperrors.ErrNotFound when no state exists yet.
	FindOnboardingState(ctx context.Context, profileID string) (*domain.OnboardingState, error)
}

// OnboardingWriter defines write operations for onboarding state.
type OnboardingWriter interface {
	// SaveOnboardingState upserts the profile's flow position.
	SaveOnboardingState(ctx context.Context, state domain.OnboardingState) error
}

// OnboardingRepositoryFacade combines all onboarding repository interfaces.
type OnboardingRepositoryFacade interface {
	OnboardingReader
	OnboardingWriter
}
