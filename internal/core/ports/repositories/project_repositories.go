package repositories

import (
	"context"
	"time"

	"github.com/jengabot/jenga_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProjectReader defines read operations for projects.
type ProjectReader interface {
	// FindDefaultProject retrieves the profile's single active project.
	// Returns apperrors.ErrNotFound when the profile has none.
	FindDefaultProject(ctx context.Context, profileID string) (*domain.Project, error)
}

// ProjectWriter defines write operations for projects.
type ProjectWriter interface {
	// SaveProject persists a new project (onboarding completion).
	SaveProject(ctx context.Context, project domain.Project) error

	// UpdateProjectBudget overwrites the project's budget. Spend is not reset.
	UpdateProjectBudget(ctx context.Context, projectID string, budget decimal.Decimal, updatedAt time.Time) error
}

// ProjectRepositoryFacade combines all project repository interfaces.
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}
