package intent

import "github.com/jengabot/jenga_backend/internal/core/domain"

// thresholds holds the fixed per-intent minimum confidence. Boundary is
// inclusive: a classification at exactly the threshold passes.
var thresholds = map[domain.IntentType]float64{
	domain.IntentLogExpense:    0.70,
	domain.IntentCreateTask:    0.85,
	domain.IntentSetBudget:     0.90,
	domain.IntentQueryExpenses: 0.80,
	domain.IntentLogImage:      0.85,
	domain.IntentUnknown:       0.50,
}

// IsValidIntent checks required-field presence per intent tag. A failing
// classification is routed to the help reply, not treated as an error.
func IsValidIntent(parsed domain.ParsedIntent) bool {
	switch parsed.Intent {
	case domain.IntentLogExpense:
		return parsed.Amount.IsPositive() && parsed.Description != ""
	case domain.IntentCreateTask:
		return parsed.Title != ""
	case domain.IntentSetBudget:
		return parsed.Amount.IsPositive()
	case domain.IntentQueryExpenses:
		return true
	case domain.IntentLogImage:
		return parsed.MediaURL != ""
	default:
		return false
	}
}

// MeetsThreshold compares the parsed confidence against the per-intent
// minimum.
func MeetsThreshold(parsed domain.ParsedIntent) bool {
	min, ok := thresholds[parsed.Intent]
	if !ok {
		return false
	}
	return parsed.Confidence >= min
}
