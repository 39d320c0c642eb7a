package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jengabot/jenga_backend/internal/core/domain"
	portsrepo "github.com/jengabot/jenga_backend/internal/core/ports/repositories"
)

type ExpenseRepository struct {
	db *pgxpool.Pool
}

func NewExpenseRepository(db *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

var _ portsrepo.ExpenseRepositoryFacade = (*ExpenseRepository)(nil)

func (r *ExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	query := `
        INSERT INTO expenses (expense_id, project_id, profile_id, category_id, amount,
                              currency_code, description, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		expense.ExpenseID,
		expense.ProjectID,
		expense.ProfileID,
		expense.CategoryID,
		expense.Amount,
		expense.CurrencyCode,
		expense.Description,
		expense.CreatedAt,
		expense.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}
	return nil
}

func (r *ExpenseRepository) SumExpenses(ctx context.Context, projectID string) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM expenses
        WHERE project_id = $1;
    `
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, projectID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}
	return total, nil
}

func (r *ExpenseRepository) SumExpensesSince(ctx context.Context, projectID string, since time.Time) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM expenses
        WHERE project_id = $1 AND created_at >= $2;
    `
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, projectID, since).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses since %s: %w", since.Format(time.RFC3339), err)
	}
	return total, nil
}

func (r *ExpenseRepository) TopCategorySpend(ctx context.Context, projectID string, limit int) ([]domain.CategorySpend, error) {
	if limit <= 0 {
		limit = 3
	}
	query := `
        SELECT c.name, SUM(e.amount) AS total
        FROM expenses e
        JOIN categories c ON c.category_id = e.category_id
        WHERE e.project_id = $1
        GROUP BY c.name
        ORDER BY total DESC
        LIMIT $2;
    `
	rows, err := r.db.Query(ctx, query, projectID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query category spend: %w", err)
	}
	defer rows.Close()

	spends := []domain.CategorySpend{}
	for rows.Next() {
		var spend domain.CategorySpend
		if err := rows.Scan(&spend.CategoryName, &spend.Total); err != nil {
			return nil, fmt.Errorf("failed to scan category spend row: %w", err)
		}
		spends = append(spends, spend)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category spend rows: %w", rows.Err())
	}
	return spends, nil
}
