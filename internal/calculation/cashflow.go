package calculation

import (
	"github.com/planwise/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// ValueSchedule discounts an arbitrary signed monthly cashflow schedule to
// present and future value.
//
// The convention is end-of-month: the first cashflow is discounted one full
// period, so
//
//	PV = Σ cf_i / (1+d)^(i+1)
//	FV = Σ cf_i * (1+d)^(n-1-i)
//
// The trajectory carries each cashflow forward at the discount rate, which
// makes its final closing balance equal the future value by construction.
func (e *Engine) ValueSchedule(input domain.CashflowValuationInput) (*domain.CashflowValuationResult, error) {
	if len(input.Schedule) == 0 {
		return nil, &domain.EmptyScheduleError{}
	}
	disc, err := NewRate(input.AnnualDiscountRate)
	if err != nil {
		return nil, err
	}

	factor := disc.MonthlyFactor()
	trajectory := make(domain.Trajectory, 0, len(input.Schedule))
	balance := decimal.Zero
	pv := decimal.Zero
	discount := one
	for i, cashflow := range input.Schedule {
		month := i + 1
		discount = discount.Mul(factor)
		pv = pv.Add(cashflow.Div(discount))

		growth := balance.Mul(disc.Monthly())
		closing := balance.Add(growth).Add(cashflow)
		trajectory = append(trajectory, domain.PeriodRecord{
			Month:          month,
			Year:           yearOf(month),
			OpeningBalance: balance,
			Growth:         growth,
			Cashflow:       cashflow,
			ClosingBalance: closing,
		})
		balance = closing
	}

	e.Logger.Debugf("cashflow valuation: %d flows pv=%s fv=%s",
		len(input.Schedule), pv.StringFixed(2), balance.StringFixed(2))

	return &domain.CashflowValuationResult{
		PresentValue:  pv,
		FutureValue:   balance,
		TotalInflows:  trajectory.TotalInflows(),
		TotalOutflows: trajectory.TotalOutflows(),
		NetCashflow:   trajectory.NetCashflow(),
		Trajectory:    trajectory,
	}, nil
}
