package repositories

import (
	"context"

	"github.com/jengabot/jenga_backend/internal/core/domain"
)

// MediaWriter defines write operations for media records.
type MediaWriter interface {
	// SaveMedia persists a received attachment, unattached to any expense.
	SaveMedia(ctx context.Context, media domain.MediaRecord) error
}

// MediaRepositoryFacade combines all media repository interfaces.
type MediaRepositoryFacade interface {
	MediaWriter
}
