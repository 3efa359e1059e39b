package calculation

import (
	"github.com/planwise/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// SustainableWithdrawal computes the monthly withdrawal, growing with
// inflation each month, that exhausts the corpus exactly at the end of the
// horizon.
//
// Closed form (present value of a growing annuity, withdrawals at month end):
//
//	PMT = corpus * (r - g) / (1 - ((1+g)/(1+r))^n)
//
// where r is the monthly return, g the monthly inflation and n the horizon.
// At r == g the formula has a removable singularity and the payment
// degenerates to straight-line corpus / n. The returned trajectory
// forward-simulates the plan; its final closing balance is zero up to
// accumulated rounding, which is the defining correctness property of the
// closed form.
func (e *Engine) SustainableWithdrawal(input domain.WithdrawalPlanInput) (*domain.WithdrawalPlanResult, error) {
	if input.Corpus.LessThanOrEqual(decimal.Zero) {
		return nil, &domain.InvalidInputError{Field: "corpus", Reason: "must be positive"}
	}
	if input.HorizonMonths <= 0 {
		return nil, &domain.InvalidInputError{Field: "horizon_months", Reason: "must be positive"}
	}
	ret, err := NewRate(input.AnnualReturnRate)
	if err != nil {
		return nil, err
	}
	infl, err := NewRate(input.AnnualInflationRate)
	if err != nil {
		return nil, err
	}

	pmt := sustainablePayment(input.Corpus, ret, infl, input.HorizonMonths)

	trajectory := make(domain.Trajectory, 0, input.HorizonMonths)
	balance := input.Corpus
	withdrawal := pmt
	total := decimal.Zero
	for month := 1; month <= input.HorizonMonths; month++ {
		growth := balance.Mul(ret.Monthly())
		closing := balance.Add(growth).Sub(withdrawal)
		trajectory = append(trajectory, domain.PeriodRecord{
			Month:          month,
			Year:           yearOf(month),
			OpeningBalance: balance,
			Growth:         growth,
			Cashflow:       withdrawal.Neg(),
			ClosingBalance: closing,
		})
		total = total.Add(withdrawal)
		balance = closing
		withdrawal = withdrawal.Mul(infl.MonthlyFactor())
	}

	e.Logger.Debugf("sustainable withdrawal: pmt=%s residual=%s",
		pmt.StringFixed(2), balance.StringFixed(6))

	return &domain.WithdrawalPlanResult{
		SustainableMonthlyWithdrawal: pmt,
		FinalMonthlyWithdrawal:       trajectory[len(trajectory)-1].Cashflow.Neg(),
		TotalWithdrawn:               total,
		Trajectory:                   trajectory,
	}, nil
}

// sustainablePayment evaluates the growing-annuity payment for the given
// corpus and horizon.
func sustainablePayment(corpus decimal.Decimal, ret, infl Rate, months int) decimal.Decimal {
	n := decimal.NewFromInt(int64(months))
	r := ret.Monthly()
	g := infl.Monthly()
	if r.Equal(g) {
		// Removable singularity: the annuity factor degenerates to n.
		return corpus.Div(n)
	}
	ratio := infl.MonthlyFactor().Div(ret.MonthlyFactor())
	factor := one.Sub(ratio.Pow(n))
	return corpus.Mul(r.Sub(g)).Div(factor)
}

// DepletionDuration simulates inflation-growing withdrawals month by month
// and reports the first month the corpus runs out. There is no closed form;
// the simulation is bounded by the engine's depletion cap, and a corpus that
// survives the cap is reported with a nil depletion month and a trajectory
// truncated at the cap.
//
// The last withdrawal is clamped to the balance available after growth, so
// the recorded closing balance never goes negative.
func (e *Engine) DepletionDuration(input domain.DepletionInput) (*domain.DepletionResult, error) {
	if input.Corpus.LessThanOrEqual(decimal.Zero) {
		return nil, &domain.InvalidInputError{Field: "corpus", Reason: "must be positive"}
	}
	if input.InitialMonthlyWithdrawal.LessThanOrEqual(decimal.Zero) {
		return nil, &domain.InvalidInputError{Field: "initial_monthly_withdrawal", Reason: "must be positive"}
	}
	ret, err := NewRate(input.AnnualReturnRate)
	if err != nil {
		return nil, err
	}
	infl, err := NewRate(input.AnnualInflationRate)
	if err != nil {
		return nil, err
	}

	maxMonths := e.DepletionCapMonths
	if maxMonths <= 0 {
		maxMonths = DefaultDepletionCapMonths
	}

	var (
		trajectory     domain.Trajectory
		depletionMonth *int
	)
	balance := input.Corpus
	withdrawal := input.InitialMonthlyWithdrawal
	total := decimal.Zero
	for month := 1; month <= maxMonths; month++ {
		growth := balance.Mul(ret.Monthly())
		available := balance.Add(growth)
		actual := decimal.Min(withdrawal, available)
		closing := available.Sub(actual)
		trajectory = append(trajectory, domain.PeriodRecord{
			Month:          month,
			Year:           yearOf(month),
			OpeningBalance: balance,
			Growth:         growth,
			Cashflow:       actual.Neg(),
			ClosingBalance: closing,
		})
		total = total.Add(actual)
		balance = closing
		if balance.LessThanOrEqual(decimal.Zero) {
			m := month
			depletionMonth = &m
			break
		}
		withdrawal = withdrawal.Mul(infl.MonthlyFactor())
	}

	result := &domain.DepletionResult{
		DepletionMonth: depletionMonth,
		TotalWithdrawn: total,
		Trajectory:     trajectory,
	}
	if depletionMonth != nil {
		result.DurationYears = decimal.NewFromInt(int64(*depletionMonth)).Div(decimal.NewFromInt(12))
		e.Logger.Debugf("corpus depleted at month %d (%s years)",
			*depletionMonth, result.DurationYears.StringFixed(1))
	} else {
		e.Logger.Debugf("corpus survived the %d month cap", maxMonths)
	}
	return result, nil
}
