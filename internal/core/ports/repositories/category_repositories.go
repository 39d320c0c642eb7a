package repositories

import (
	"context"

	"github.com/jengabot/jenga_backend/internal/core/domain"
)

// CategoryReader defines read operations for expense categories.
type CategoryReader interface {
	// FindCategoryByKeyword matches message text against the fixed keyword
	// table of the profile's categories. Returns nil when nothing matches;
	// expenses are then left uncategorized.
	FindCategoryByKeyword(ctx context.Context, profileID string, text string) (*domain.Category, error)
}

// CategoryWriter defines write operations for expense categories.
type CategoryWriter interface {
	// SaveCategories persists the seed categories for a new profile.
	SaveCategories(ctx context.Context, categories []domain.Category) error
}

// CategoryRepositoryFacade combines all category repository interfaces.
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
