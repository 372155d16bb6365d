package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOverBudgetIsStrict(t *testing.T) {
	state := CampaignState{
		Brand: Brand{DailyBudget: decimal.RequireFromString("100"), MonthlyBudget: decimal.RequireFromString("1000")},
	}
	state.Campaign.DailySpend = decimal.RequireFromString("100.00")
	state.Campaign.MonthlySpend = decimal.RequireFromString("1000")
	assert.False(t, state.OverBudget())

	state.Campaign.DailySpend = decimal.RequireFromString("100.01")
	assert.True(t, state.OverDaily())
	assert.True(t, state.OverBudget())

	state.Campaign.DailySpend = decimal.Zero
	state.Campaign.MonthlySpend = decimal.RequireFromString("1000.01")
	assert.True(t, state.OverMonthly())
	assert.True(t, state.OverBudget())
}

func TestBudgetCheckDue(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	def := 15 * time.Minute

	var c Campaign
	assert.True(t, c.BudgetCheckDue(now, def), "never checked")

	last := now.Add(-10 * time.Minute)
	c.LastBudgetCheck = &last
	assert.False(t, c.BudgetCheckDue(now, def))
	assert.True(t, c.BudgetCheckDue(now.Add(5*time.Minute), def))

	five := 5
	c.BudgetCheckFrequency = &five
	assert.Equal(t, 5*time.Minute, c.CheckInterval(def))
	assert.True(t, c.BudgetCheckDue(now, def))
}
