package budgeting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jengabot/jenga_backend/internal/utils/budgeting"
)

func TestCompute(t *testing.T) {
	budget := decimal.NewFromInt(5000000)
	spent := decimal.NewFromInt(1250000)

	s := budgeting.Compute(budget, spent)

	assert.True(t, spent.Equal(s.Spent))
	assert.True(t, decimal.NewFromInt(3750000).Equal(s.Remaining))
	assert.Equal(t, "25", s.PercentUsed.String())
	assert.False(t, s.OverBudget())
	assert.False(t, s.NearLimit())
}

func TestCompute_ZeroBudget(t *testing.T) {
	s := budgeting.Compute(decimal.Zero, decimal.NewFromInt(100000))

	assert.True(t, s.PercentUsed.IsZero())
	assert.True(t, decimal.NewFromInt(-100000).Equal(s.Remaining))
	assert.True(t, s.OverBudget())
}

func TestCompute_PercentRounding(t *testing.T) {
	s := budgeting.Compute(decimal.NewFromInt(3), decimal.NewFromInt(1))

	assert.Equal(t, "33.3", s.PercentUsed.String())
}

func TestSnapshot_OverBudget(t *testing.T) {
	s := budgeting.Compute(decimal.NewFromInt(100), decimal.NewFromInt(150))

	assert.True(t, s.OverBudget())
	assert.True(t, s.NearLimit())
}

func TestSnapshot_NearLimitBoundary(t *testing.T) {
	at80 := budgeting.Compute(decimal.NewFromInt(100), decimal.NewFromInt(80))
	under80 := budgeting.Compute(decimal.NewFromInt(100), decimal.NewFromInt(79))

	assert.True(t, at80.NearLimit())
	assert.False(t, under80.NearLimit())
	assert.False(t, at80.OverBudget())
}
