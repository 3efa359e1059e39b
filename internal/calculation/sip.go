package calculation

import (
	"github.com/planwise/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// StepUpFutureValue simulates a monthly SIP whose contribution rises by the
// step-up percentage after every completed 12-month block: months 1-12 invest
// the base amount, months 13-24 invest base * (1+s), and so on.
//
// Contributions land at period end, after the month's growth of the opening
// balance, so the zero step-up case reduces to an ordinary annuity:
//
//	FV = C * ((1+r)^n - 1) / r
func (e *Engine) StepUpFutureValue(input domain.StepUpSIPInput) (*domain.StepUpSIPResult, error) {
	if input.MonthlyContribution.LessThanOrEqual(decimal.Zero) {
		return nil, &domain.InvalidInputError{Field: "monthly_contribution", Reason: "must be positive"}
	}
	if input.HorizonMonths <= 0 {
		return nil, &domain.InvalidInputError{Field: "horizon_months", Reason: "must be positive"}
	}
	if input.AnnualStepUpPercent.LessThan(decimal.Zero) {
		return nil, &domain.InvalidInputError{Field: "annual_stepup_percent", Reason: "cannot be negative"}
	}
	ret, err := NewRate(input.AnnualReturnRate)
	if err != nil {
		return nil, err
	}

	stepFactor := one.Add(input.AnnualStepUpPercent.Div(hundred))

	trajectory := make(domain.Trajectory, 0, input.HorizonMonths)
	balance := decimal.Zero
	contribution := input.MonthlyContribution
	invested := decimal.Zero
	for month := 1; month <= input.HorizonMonths; month++ {
		growth := balance.Mul(ret.Monthly())
		closing := balance.Add(growth).Add(contribution)
		trajectory = append(trajectory, domain.PeriodRecord{
			Month:          month,
			Year:           yearOf(month),
			OpeningBalance: balance,
			Growth:         growth,
			Cashflow:       contribution,
			ClosingBalance: closing,
		})
		invested = invested.Add(contribution)
		balance = closing
		if month%12 == 0 {
			contribution = contribution.Mul(stepFactor)
		}
	}

	e.Logger.Debugf("step-up SIP: invested=%s future value=%s",
		invested.StringFixed(2), balance.StringFixed(2))

	return &domain.StepUpSIPResult{
		FutureValue:   balance,
		TotalInvested: invested,
		ReturnsEarned: balance.Sub(invested),
		Trajectory:    trajectory,
	}, nil
}
