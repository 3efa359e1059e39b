package domain

import (
	"github.com/shopspring/decimal"
)

// PeriodRecord represents the complete cash movement for a single month.
// Cashflow is signed: withdrawals are negative, contributions and inflows are
// positive. Each record's ClosingBalance feeds the next record's
// OpeningBalance.
type PeriodRecord struct {
	Month          int             `yaml:"month" json:"month"`
	Year           int             `yaml:"year" json:"year"`
	OpeningBalance decimal.Decimal `yaml:"opening_balance" json:"opening_balance"`
	Growth         decimal.Decimal `yaml:"growth" json:"growth"`
	Cashflow       decimal.Decimal `yaml:"cashflow" json:"cashflow"`
	ClosingBalance decimal.Decimal `yaml:"closing_balance" json:"closing_balance"`
}

// Trajectory is the chronological month-by-month breakdown of a calculation.
// A trajectory is created fresh per calculation call and owned solely by the
// caller that requested it.
type Trajectory []PeriodRecord

// FinalBalance returns the closing balance of the last period, or zero for an
// empty trajectory.
func (t Trajectory) FinalBalance() decimal.Decimal {
	if len(t) == 0 {
		return decimal.Zero
	}
	return t[len(t)-1].ClosingBalance
}

// TotalInflows returns the sum of all positive cashflows.
func (t Trajectory) TotalInflows() decimal.Decimal {
	total := decimal.Zero
	for _, p := range t {
		if p.Cashflow.IsPositive() {
			total = total.Add(p.Cashflow)
		}
	}
	return total
}

// TotalOutflows returns the sum of the absolute values of all negative
// cashflows.
func (t Trajectory) TotalOutflows() decimal.Decimal {
	total := decimal.Zero
	for _, p := range t {
		if p.Cashflow.IsNegative() {
			total = total.Add(p.Cashflow.Abs())
		}
	}
	return total
}

// NetCashflow returns inflows minus outflows.
func (t Trajectory) NetCashflow() decimal.Decimal {
	return t.TotalInflows().Sub(t.TotalOutflows())
}

// TotalGrowth returns the sum of per-period growth over the trajectory.
func (t Trajectory) TotalGrowth() decimal.Decimal {
	total := decimal.Zero
	for _, p := range t {
		total = total.Add(p.Growth)
	}
	return total
}
