package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jengabot/jenga_backend/internal/core/domain"
	portsrepo "github.com/jengabot/jenga_backend/internal/core/ports/repositories"
)

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

var _ portsrepo.TaskRepositoryFacade = (*TaskRepository)(nil)

func (r *TaskRepository) SaveTask(ctx context.Context, task domain.Task) error {
	query := `
        INSERT INTO tasks (task_id, project_id, profile_id, title, priority, status, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		task.TaskID,
		task.ProjectID,
		task.ProfileID,
		task.Title,
		task.Priority,
		task.Status,
		task.CreatedAt,
		task.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}
	return nil
}

func (r *TaskRepository) CountPendingTasks(ctx context.Context, profileID string) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM tasks
        WHERE profile_id = $1 AND status = $2;
    `
	var count int
	if err := r.db.QueryRow(ctx, query, profileID, domain.TaskPending).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending tasks: %w", err)
	}
	return count, nil
}
