package intent_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jengabot/jenga_backend/internal/core/domain"
	"github.com/jengabot/jenga_backend/internal/core/intent"
)

func TestMeetsThreshold_InclusiveBoundary(t *testing.T) {
	below := domain.ParsedIntent{Intent: domain.IntentLogExpense, Confidence: 0.69}
	atBoundary := domain.ParsedIntent{Intent: domain.IntentLogExpense, Confidence: 0.70}

	assert.False(t, intent.MeetsThreshold(below))
	assert.True(t, intent.MeetsThreshold(atBoundary))
}

func TestMeetsThreshold_PerIntent(t *testing.T) {
	tests := []struct {
		intentType domain.IntentType
		confidence float64
		want       bool
	}{
		{domain.IntentLogExpense, 0.75, true},
		{domain.IntentCreateTask, 0.84, false},
		{domain.IntentCreateTask, 0.85, true},
		{domain.IntentSetBudget, 0.89, false},
		{domain.IntentSetBudget, 0.90, true},
		{domain.IntentQueryExpenses, 0.80, true},
		{domain.IntentQueryExpenses, 0.79, false},
		{domain.IntentLogImage, 0.85, true},
		{domain.IntentUnknown, 0.50, true},
	}

	for _, tt := range tests {
		got := intent.MeetsThreshold(domain.ParsedIntent{Intent: tt.intentType, Confidence: tt.confidence})
		assert.Equal(t, tt.want, got, "%s at %.2f", tt.intentType, tt.confidence)
	}
}

func TestIsValidIntent(t *testing.T) {
	amount := decimal.NewFromInt(50000)

	tests := []struct {
		name   string
		parsed domain.ParsedIntent
		want   bool
	}{
		{"expense complete", domain.ParsedIntent{Intent: domain.IntentLogExpense, Amount: amount, Description: "cement"}, true},
		{"expense zero amount", domain.ParsedIntent{Intent: domain.IntentLogExpense, Description: "cement"}, false},
		{"expense no description", domain.ParsedIntent{Intent: domain.IntentLogExpense, Amount: amount}, false},
		{"task with title", domain.ParsedIntent{Intent: domain.IntentCreateTask, Title: "inspect"}, true},
		{"task empty title", domain.ParsedIntent{Intent: domain.IntentCreateTask}, false},
		{"budget positive", domain.ParsedIntent{Intent: domain.IntentSetBudget, Amount: amount}, true},
		{"budget zero", domain.ParsedIntent{Intent: domain.IntentSetBudget}, false},
		{"query always valid", domain.ParsedIntent{Intent: domain.IntentQueryExpenses}, true},
		{"image with url", domain.ParsedIntent{Intent: domain.IntentLogImage, MediaURL: "https://x/1"}, true},
		{"image without url", domain.ParsedIntent{Intent: domain.IntentLogImage}, false},
		{"unknown never valid", domain.ParsedIntent{Intent: domain.IntentUnknown}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, intent.IsValidIntent(tt.parsed))
		})
	}
}
