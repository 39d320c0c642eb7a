package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jengabot/jenga_backend/internal/apperrors"
	"github.com/jengabot/jenga_backend/internal/core/domain"
	portsrepo "github.com/jengabot/jenga_backend/internal/core/ports/repositories"
)

type ProjectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

var _ portsrepo.ProjectRepositoryFacade = (*ProjectRepository)(nil)

func (r *ProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	query := `
        INSERT INTO projects (project_id, profile_id, name, project_type, location, start_date,
                              budget_amount, currency_code, status, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		project.ProjectID,
		project.ProfileID,
		project.Name,
		project.ProjectType,
		project.Location,
		project.StartDate,
		project.BudgetAmount,
		project.CurrencyCode,
		project.Status,
		project.CreatedAt,
		project.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}
	return nil
}

// FindDefaultProject returns the profile's single active project, most
// recently created first when legacy data holds several.
func (r *ProjectRepository) FindDefaultProject(ctx context.Context, profileID string) (*domain.Project, error) {
	query := `
        SELECT project_id, profile_id, name, project_type, location, start_date,
               budget_amount, currency_code, status, created_at, last_updated_at
        FROM projects
        WHERE profile_id = $1 AND status = $2
        ORDER BY created_at DESC
        LIMIT 1;
    `
	var project domain.Project
	err := r.db.QueryRow(ctx, query, profileID, domain.ProjectActive).Scan(
		&project.ProjectID,
		&project.ProfileID,
		&project.Name,
		&project.ProjectType,
		&project.Location,
		&project.StartDate,
		&project.BudgetAmount,
		&project.CurrencyCode,
		&project.Status,
		&project.CreatedAt,
		&project.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find default project: %w", err)
	}
	return &project, nil
}

func (r *ProjectRepository) UpdateProjectBudget(ctx context.Context, projectID string, budget decimal.Decimal, updatedAt time.Time) error {
	query := `
        UPDATE projects
        SET budget_amount = $1, last_updated_at = $2
        WHERE project_id = $3;
    `
	cmdTag, err := r.db.Exec(ctx, query, budget, updatedAt, projectID)
	if err != nil {
		return fmt.Errorf("failed to update project budget: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
