package repositories

import (
	"context"
	"time"

	"github.com/jengabot/jenga_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpenseWriter defines write operations for expenses.
type ExpenseWriter interface {
	// SaveExpense persists a new expense row.
	SaveExpense(ctx context.Context, expense domain.Expense) error
}

// ExpenseReader defines read/aggregate operations for expenses.
type ExpenseReader interface {
	// SumExpenses totals all spend against a project.
	SumExpenses(ctx context.Context, projectID string) (decimal.Decimal, error)

	// SumExpensesSince totals spend recorded at or after the given time.
	SumExpensesSince(ctx context.Context, projectID string, since time.Time) (decimal.Decimal, error)

	// TopCategorySpend returns per-category totals, spend descending.
	TopCategorySpend(ctx context.Context, projectID string, limit int) ([]domain.CategorySpend, error)
}

// ExpenseRepositoryFacade combines all expense repository interfaces.
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
