package output

import (
	"github.com/shopspring/decimal"

	money "github.com/planwise/retirement-planner/pkg/decimal"
)

// FormatCurrency formats a decimal for display in the Indian convention
// (Lakh/Crore grouping). Kept here so it can be reused by multiple formatters
// and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).FormatINR()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }
