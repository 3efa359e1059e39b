package calculation

import (
	"math"

	"github.com/planwise/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// ToMonthlyRate converts an annual percentage rate to the equivalent monthly
// compounding rate: (1 + annual/100)^(1/12) - 1.
//
// The 12th root is taken in float64; shopspring decimal has no fractional
// exponentiation, and the sub-ulp error is far below the paise precision of
// any downstream figure. All integer-exponent compounding stays in decimal.
func ToMonthlyRate(annualPercent decimal.Decimal) (decimal.Decimal, error) {
	base := one.Add(annualPercent.Div(hundred))
	if base.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, &domain.InvalidRateError{AnnualRatePercent: annualPercent}
	}
	monthly := math.Pow(base.InexactFloat64(), 1.0/12.0) - 1
	return decimal.NewFromFloat(monthly), nil
}

// Rate pairs an annual percentage rate with its derived monthly compounding
// rate. The monthly rate is always computed from the annual rate at
// construction; it is never stored independently, so the two cannot drift.
type Rate struct {
	annualPercent decimal.Decimal
	monthly       decimal.Decimal
}

// NewRate builds a Rate from an annual percentage.
func NewRate(annualPercent decimal.Decimal) (Rate, error) {
	monthly, err := ToMonthlyRate(annualPercent)
	if err != nil {
		return Rate{}, err
	}
	return Rate{annualPercent: annualPercent, monthly: monthly}, nil
}

// AnnualPercent returns the annual percentage rate the pair was built from.
func (r Rate) AnnualPercent() decimal.Decimal { return r.annualPercent }

// Monthly returns the equivalent monthly compounding rate.
func (r Rate) Monthly() decimal.Decimal { return r.monthly }

// MonthlyFactor returns 1 + the monthly rate, the per-period growth factor.
func (r Rate) MonthlyFactor() decimal.Decimal { return one.Add(r.monthly) }
