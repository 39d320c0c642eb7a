package repositories

import (
	"context"

	"github.com/jengabot/jenga_backend/internal/core/domain"
)

// ProfileReader defines read operations for owner profiles.
type ProfileReader interface {
	// FindProfileByPhone retrieves a profile by its E.164 phone number.
	// Returns apperrors.ErrNotFound for unregistered numbers.
	FindProfileByPhone(ctx context.Context, phoneNumber string) (*domain.Profile, error)

	// FindProfileByID retrieves a profile by its ID.
	FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error)
}

// ProfileWriter defines write operations for owner profiles.
type ProfileWriter interface {
	// SaveProfile persists a newly auto-provisioned profile.
	SaveProfile(ctx context.Context, profile domain.Profile) error
}

// ProfileRepositoryFacade combines all profile repository interfaces.
type ProfileRepositoryFacade interface {
	ProfileReader
	ProfileWriter
}
