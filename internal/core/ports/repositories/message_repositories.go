package repositories

import (
	"context"
	"time"

	"github.com/jengabot/jenga_backend/internal/core/domain"
)

// MessageFilter narrows audit message queries from the ops API.
type MessageFilter struct {
	ProfileID *string
	Direction *domain.MessageDirection
	Processed *bool
	Limit     int
	Offset    int
}

// MessageWriter defines write operations for the audit message log.
type MessageWriter interface {
	// SaveMessage persists a new audit row (inbound or outbound).
	SaveMessage(ctx context.Context, record domain.MessageRecord) error

	// MarkMessageProcessed finalizes an inbound row. errorMessage is empty on
	// success; the row is never mutated again afterwards.
	MarkMessageProcessed(ctx context.Context, messageID string, intent domain.IntentType, errorMessage string, processedAt time.Time) error
}

// MessageReader defines read operations for the audit message log.
type MessageReader interface {
	// FindMessages retrieves audit rows matching the filter, newest first.
	FindMessages(ctx context.Context, filter MessageFilter) ([]domain.MessageRecord, error)
}

// MessageRepositoryFacade combines all audit message repository interfaces.
type MessageRepositoryFacade interface {
	MessageReader
	MessageWriter
}
