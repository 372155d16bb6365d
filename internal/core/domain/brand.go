package domain

import "github.com/shopspring/decimal"

// Brand is an advertiser owning one or more campaigns. Budgets are
// currency-less decimal amounts shared by every campaign of the brand.
type Brand struct {
	ID            int64
	Name          string
	DailyBudget   decimal.Decimal
	MonthlyBudget decimal.Decimal
}
