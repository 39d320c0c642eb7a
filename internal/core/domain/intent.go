package domain

import "github.com/shopspring/decimal"

// IntentType is the classified purpose of an inbound WhatsApp message.
type IntentType string

const (
	IntentLogExpense    IntentType = "log_expense"
	IntentCreateTask    IntentType = "create_task"
	IntentSetBudget     IntentType = "set_budget"
	IntentQueryExpenses IntentType = "query_expenses"
	IntentLogImage      IntentType = "log_image"
	IntentUnknown       IntentType = "unknown"
)

// ParsedIntent is the result of running a message through the pattern
// cascade. Exactly one intent tag is set; only the fields belonging to that
// tag are meaningful.
type ParsedIntent struct {
	Intent          IntentType
	Confidence      float64
	OriginalMessage string

	// log_expense / set_budget
	Amount       decimal.Decimal
	Description  string
	CurrencyCode string

	// create_task
	Title    string
	Priority TaskPriority

	// log_image
	Caption  string
	MediaURL string
}
