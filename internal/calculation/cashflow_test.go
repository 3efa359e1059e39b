package calculation

import (
	"errors"
	"testing"

	"github.com/planwise/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueScheduleEmpty(t *testing.T) {
	engine := NewEngine()
	result, err := engine.ValueSchedule(domain.CashflowValuationInput{
		Schedule:           domain.CashflowSchedule{},
		AnnualDiscountRate: decimal.NewFromInt(8),
	})
	assert.Nil(t, result)
	var scheduleErr *domain.EmptyScheduleError
	assert.True(t, errors.As(err, &scheduleErr))
}

func TestValueScheduleAllZeros(t *testing.T) {
	engine := NewEngine()
	schedule := make(domain.CashflowSchedule, 12)
	for i := range schedule {
		schedule[i] = decimal.Zero
	}
	result, err := engine.ValueSchedule(domain.CashflowValuationInput{
		Schedule:           schedule,
		AnnualDiscountRate: decimal.NewFromInt(7),
	})
	require.NoError(t, err)

	assert.True(t, result.PresentValue.IsZero())
	assert.True(t, result.FutureValue.IsZero())
	assert.True(t, result.NetCashflow.IsZero())
	require.Len(t, result.Trajectory, 12)
}

func TestValueScheduleSingleCashflow(t *testing.T) {
	// One inflow: PV discounts it one period (end-of-month convention), FV is
	// the flow itself.
	engine := NewEngine()
	result, err := engine.ValueSchedule(domain.CashflowValuationInput{
		Schedule:           domain.CashflowSchedule{decimal.NewFromInt(1000)},
		AnnualDiscountRate: decimal.NewFromInt(12),
	})
	require.NoError(t, err)

	d, err := ToMonthlyRate(decimal.NewFromInt(12))
	require.NoError(t, err)
	expectedPV := decimal.NewFromInt(1000).Div(decimal.NewFromInt(1).Add(d))

	assert.True(t, result.PresentValue.Equal(expectedPV))
	assert.True(t, result.FutureValue.Equal(decimal.NewFromInt(1000)))
	assert.True(t, result.PresentValue.LessThan(result.FutureValue))
}

func TestValueScheduleMixedFlows(t *testing.T) {
	engine := NewEngine()
	flows := []int64{50000, 52000, 54000, -30000, -31000, 60000, 62000, -35000, 65000, 67000, -40000, 70000}
	schedule := make(domain.CashflowSchedule, len(flows))
	for i, f := range flows {
		schedule[i] = decimal.NewFromInt(f)
	}
	rate := decimal.NewFromInt(8)
	result, err := engine.ValueSchedule(domain.CashflowValuationInput{
		Schedule:           schedule,
		AnnualDiscountRate: rate,
	})
	require.NoError(t, err)

	assert.True(t, result.TotalInflows.Equal(decimal.NewFromInt(480000)))
	assert.True(t, result.TotalOutflows.Equal(decimal.NewFromInt(136000)))
	assert.True(t, result.NetCashflow.Equal(decimal.NewFromInt(344000)))

	// FV must agree with the direct sum Σ cf_i * (1+d)^(n-1-i).
	d, err := ToMonthlyRate(rate)
	require.NoError(t, err)
	factor := decimal.NewFromInt(1).Add(d)
	expectedFV := decimal.Zero
	n := len(schedule)
	for i, cf := range schedule {
		exponent := decimal.NewFromInt(int64(n - 1 - i))
		expectedFV = expectedFV.Add(cf.Mul(factor.Pow(exponent)))
	}
	assert.True(t, result.FutureValue.Sub(expectedFV).Abs().LessThan(decimal.NewFromFloat(0.01)),
		"expected %s, got %s", expectedFV.StringFixed(4), result.FutureValue.StringFixed(4))

	assert.True(t, result.Trajectory.FinalBalance().Equal(result.FutureValue))
	assert.True(t, result.PresentValue.LessThan(result.NetCashflow),
		"discounting must shrink a net-positive schedule")
}

func TestValueScheduleInvalidRate(t *testing.T) {
	engine := NewEngine()
	_, err := engine.ValueSchedule(domain.CashflowValuationInput{
		Schedule:           domain.CashflowSchedule{decimal.NewFromInt(1000)},
		AnnualDiscountRate: decimal.NewFromInt(-100),
	})
	var rateErr *domain.InvalidRateError
	assert.True(t, errors.As(err, &rateErr))
}
