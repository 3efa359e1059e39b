package domain

import (
	"github.com/shopspring/decimal"
)

// WithdrawalPlanInput describes a sustainable-withdrawal calculation: the
// monthly amount, growing with inflation, that exhausts the corpus exactly at
// the end of the horizon.
type WithdrawalPlanInput struct {
	Corpus              decimal.Decimal `yaml:"corpus" json:"corpus"`
	AnnualReturnRate    decimal.Decimal `yaml:"annual_return_rate" json:"annual_return_rate"`
	AnnualInflationRate decimal.Decimal `yaml:"annual_inflation_rate" json:"annual_inflation_rate"`
	HorizonMonths       int             `yaml:"horizon_months" json:"horizon_months"`
}

// WithdrawalPlanResult summarizes a sustainable-withdrawal plan. The
// trajectory's final closing balance is zero up to accumulated rounding.
type WithdrawalPlanResult struct {
	SustainableMonthlyWithdrawal decimal.Decimal `json:"sustainable_monthly_withdrawal"`
	FinalMonthlyWithdrawal       decimal.Decimal `json:"final_monthly_withdrawal"`
	TotalWithdrawn               decimal.Decimal `json:"total_withdrawn"`
	Trajectory                   Trajectory      `json:"trajectory"`
}

// DepletionInput describes a corpus-duration calculation: how long the corpus
// lasts under an inflation-growing monthly withdrawal.
type DepletionInput struct {
	Corpus                   decimal.Decimal `yaml:"corpus" json:"corpus"`
	AnnualReturnRate         decimal.Decimal `yaml:"annual_return_rate" json:"annual_return_rate"`
	AnnualInflationRate      decimal.Decimal `yaml:"annual_inflation_rate" json:"annual_inflation_rate"`
	InitialMonthlyWithdrawal decimal.Decimal `yaml:"initial_monthly_withdrawal" json:"initial_monthly_withdrawal"`
}

// DepletionResult summarizes a corpus-duration simulation. DepletionMonth is
// nil when the corpus outlives the simulation cap, in which case the
// trajectory is truncated at the cap.
type DepletionResult struct {
	DepletionMonth *int            `json:"depletion_month"`
	DurationYears  decimal.Decimal `json:"duration_years"`
	TotalWithdrawn decimal.Decimal `json:"total_withdrawn"`
	Trajectory     Trajectory      `json:"trajectory"`
}

// Depleted reports whether the corpus ran out within the simulation cap.
func (r *DepletionResult) Depleted() bool {
	return r.DepletionMonth != nil
}

// StepUpSIPInput describes a step-up SIP accumulation: a monthly contribution
// that rises by a fixed percentage after every completed 12-month block.
type StepUpSIPInput struct {
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	AnnualReturnRate    decimal.Decimal `yaml:"annual_return_rate" json:"annual_return_rate"`
	AnnualStepUpPercent decimal.Decimal `yaml:"annual_stepup_percent" json:"annual_stepup_percent"`
	HorizonMonths       int             `yaml:"horizon_months" json:"horizon_months"`
}

// StepUpSIPResult summarizes a step-up SIP accumulation.
type StepUpSIPResult struct {
	FutureValue   decimal.Decimal `json:"future_value"`
	TotalInvested decimal.Decimal `json:"total_invested"`
	ReturnsEarned decimal.Decimal `json:"returns_earned"`
	Trajectory    Trajectory      `json:"trajectory"`
}

// CashflowSchedule is an ordered sequence of signed monthly cashflows:
// positive values are inflows, negative values are outflows. The engine treats
// it as read-only.
type CashflowSchedule []decimal.Decimal

// CashflowValuationInput describes a present/future value calculation over an
// arbitrary cashflow schedule.
type CashflowValuationInput struct {
	Schedule           CashflowSchedule `yaml:"schedule" json:"schedule"`
	AnnualDiscountRate decimal.Decimal  `yaml:"annual_discount_rate" json:"annual_discount_rate"`
}

// CashflowValuationResult summarizes the valuation of a cashflow schedule.
type CashflowValuationResult struct {
	PresentValue  decimal.Decimal `json:"present_value"`
	FutureValue   decimal.Decimal `json:"future_value"`
	TotalInflows  decimal.Decimal `json:"total_inflows"`
	TotalOutflows decimal.Decimal `json:"total_outflows"`
	NetCashflow   decimal.Decimal `json:"net_cashflow"`
	Trajectory    Trajectory      `json:"trajectory"`
}

// ScenarioResult pairs a named scenario with whichever calculation result it
// produced. Exactly one of the result fields is set.
type ScenarioResult struct {
	Name       string                   `json:"name"`
	Withdrawal *WithdrawalPlanResult    `json:"withdrawal_plan,omitempty"`
	Depletion  *DepletionResult         `json:"depletion,omitempty"`
	SIP        *StepUpSIPResult         `json:"stepup_sip,omitempty"`
	Cashflow   *CashflowValuationResult `json:"cashflow_valuation,omitempty"`
}

// Trajectory returns the month-by-month breakdown of whichever result is set,
// or nil when the result is empty.
func (r *ScenarioResult) Trajectory() Trajectory {
	switch {
	case r.Withdrawal != nil:
		return r.Withdrawal.Trajectory
	case r.Depletion != nil:
		return r.Depletion.Trajectory
	case r.SIP != nil:
		return r.SIP.Trajectory
	case r.Cashflow != nil:
		return r.Cashflow.Trajectory
	default:
		return nil
	}
}
