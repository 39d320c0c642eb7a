package repositories

import (
	"context"

	"github.com/jengabot/jenga_backend/internal/core/domain"
)

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	// SaveTask persists a new task row.
	SaveTask(ctx context.Context, task domain.Task) error
}

// TaskReader defines read operations for tasks.
type TaskReader interface {
	// CountPendingTasks counts the profile's tasks still pending.
	CountPendingTasks(ctx context.Context, profileID string) (int, error)
}

// TaskRepositoryFacade combines all task repository interfaces.
type TaskRepositoryFacade interface {
	TaskReader
	TaskWriter
}
