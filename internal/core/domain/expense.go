package domain

import "github.com/shopspring/decimal"

// Expense is a single spend logged against a project.
type Expense struct {
	ExpenseID    string          `json:"expenseID"`
	ProjectID    string          `json:"projectID"`
	ProfileID    string          `json:"profileID"`
	CategoryID   *string         `json:"categoryID,omitempty"` // nil when no keyword matched
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Description  string          `json:"description"`
	AuditFields
}

// CategorySpend is an aggregate of spend per category, used by expense
// summaries.
type CategorySpend struct {
	CategoryName string          `json:"categoryName"`
	Total        decimal.Decimal `json:"total"`
}
