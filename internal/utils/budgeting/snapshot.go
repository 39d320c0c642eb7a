package budgeting

import "github.com/shopspring/decimal"

// Snapshot is the budget position reported in replies. It is recomputed from
// scratch on every use; spent is never stored on the project row.
type Snapshot struct {
	Spent       decimal.Decimal
	Remaining   decimal.Decimal
	PercentUsed decimal.Decimal
}

// Compute derives the budget position from a budget and the summed spend.
// All reply-composition paths (expense logging, budget setting, querying)
// share this so the three cannot drift apart. A zero budget reports zero
// percent used rather than dividing by zero.
func Compute(budget, spent decimal.Decimal) Snapshot {
	s := Snapshot{
		Spent:     spent,
		Remaining: budget.Sub(spent),
	}
	if budget.IsPositive() {
		s.PercentUsed = spent.Div(budget).Mul(decimal.NewFromInt(100)).Round(1)
	}
	return s
}

// OverBudget reports whether spend has exceeded the budget.
func (s Snapshot) OverBudget() bool {
	return s.Remaining.IsNegative()
}

// NearLimit reports whether at least 80% of the budget is used.
func (s Snapshot) NearLimit() bool {
	return s.PercentUsed.GreaterThanOrEqual(decimal.NewFromInt(80))
}
