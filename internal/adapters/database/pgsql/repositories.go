package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/jengabot/jenga_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every Postgres-backed repository into the
// provider the service container consumes.
func NewRepositoryProvider(db *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		ProfileRepo:    NewProfileRepository(db),
		ProjectRepo:    NewProjectRepository(db),
		ExpenseRepo:    NewExpenseRepository(db),
		CategoryRepo:   NewCategoryRepository(db),
		TaskRepo:       NewTaskRepository(db),
		MediaRepo:      NewMediaRepository(db),
		MessageRepo:    NewMessageRepository(db),
		OnboardingRepo: NewOnboardingRepository(db),
	}
}
