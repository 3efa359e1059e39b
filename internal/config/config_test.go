package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/planwise/retirement-planner/internal/calculation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	yaml := `
depletion_cap_months: 600
scenarios:
  - name: base withdrawal plan
    type: sustainable_withdrawal
    corpus: 10000000
    annual_return_rate: 8
    annual_inflation_rate: 6
    horizon_months: 360
  - name: duration check
    type: depletion_duration
    corpus: 10000000
    annual_return_rate: 8
    annual_inflation_rate: 6
    initial_monthly_withdrawal: 80000
  - name: sip plan
    type: stepup_sip
    monthly_contribution: 50000
    annual_return_rate: 12
    annual_stepup_percent: 10
    horizon_months: 240
  - name: cashflows
    type: cashflow_valuation
    annual_discount_rate: 8
    cashflows: [50000, -30000, 25000]
`
	path := writeTempFile(t, "scenarios.yaml", yaml)

	parser := NewInputParser()
	config, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, config.Scenarios, 4)

	assert.Equal(t, 600, config.DepletionCapMonths)
	assert.Equal(t, ScenarioSustainableWithdrawal, config.Scenarios[0].Type)
	assert.True(t, config.Scenarios[0].Corpus.Equal(decimal.NewFromInt(10000000)))
	assert.Equal(t, 360, config.Scenarios[0].HorizonMonths)
	assert.True(t, config.Scenarios[1].InitialMonthlyWithdrawal.Equal(decimal.NewFromInt(80000)))
	assert.True(t, config.Scenarios[2].AnnualStepUpPercent.Equal(decimal.NewFromInt(10)))
	require.Len(t, config.Scenarios[3].Cashflows, 3)
	assert.True(t, config.Scenarios[3].Cashflows[1].Equal(decimal.NewFromInt(-30000)))
}

func TestLoadFromFileMissing(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		errPhrase string
	}{
		{
			name:      "no scenarios",
			yaml:      "scenarios: []",
			errPhrase: "no scenarios",
		},
		{
			name: "missing name",
			yaml: `
scenarios:
  - type: stepup_sip
    monthly_contribution: 1000
    annual_return_rate: 10
    horizon_months: 12
`,
			errPhrase: "name is required",
		},
		{
			name: "unknown type",
			yaml: `
scenarios:
  - name: bad
    type: monte_carlo
`,
			errPhrase: "scenario type",
		},
		{
			name: "non-positive corpus",
			yaml: `
scenarios:
  - name: bad corpus
    type: sustainable_withdrawal
    corpus: 0
    horizon_months: 12
`,
			errPhrase: "corpus must be positive",
		},
		{
			name: "cashflow scenario without flows",
			yaml: `
scenarios:
  - name: empty flows
    type: cashflow_valuation
    annual_discount_rate: 8
`,
			errPhrase: "cashflows or cashflow_file",
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, "bad.yaml", tt.yaml)
			_, err := parser.LoadFromFile(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPhrase)
		})
	}
}

func TestExampleConfiguration(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()

	require.NoError(t, parser.ValidateConfiguration(config))
	assert.Len(t, config.Scenarios, 4)

	engine := config.NewEngine()
	results, err := config.RunAll(engine)
	require.NoError(t, err)
	require.Len(t, results, 4)
	for _, result := range results {
		assert.NotEmpty(t, result.Trajectory(), "scenario %s produced no trajectory", result.Name)
	}
}

func TestLoadCashflowSchedule(t *testing.T) {
	t.Run("with header", func(t *testing.T) {
		path := writeTempFile(t, "flows.csv", "Cashflow\n50000\n-30000\n25000\n")
		schedule, err := LoadCashflowSchedule(path)
		require.NoError(t, err)
		require.Len(t, schedule, 3)
		assert.True(t, schedule[1].Equal(decimal.NewFromInt(-30000)))
	})

	t.Run("without header", func(t *testing.T) {
		path := writeTempFile(t, "flows.csv", "100.50\n-200.25\n")
		schedule, err := LoadCashflowSchedule(path)
		require.NoError(t, err)
		require.Len(t, schedule, 2)
		assert.True(t, schedule[0].Equal(decimal.NewFromFloat(100.50)))
	})

	t.Run("invalid value", func(t *testing.T) {
		path := writeTempFile(t, "flows.csv", "Cashflow\n50000\noops\n")
		_, err := LoadCashflowSchedule(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid value")
	})

	t.Run("no values", func(t *testing.T) {
		path := writeTempFile(t, "flows.csv", "Cashflow\n")
		_, err := LoadCashflowSchedule(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no cashflow values")
	})
}

func TestScenarioRunFromCashflowFile(t *testing.T) {
	path := writeTempFile(t, "flows.csv", "Cashflow\n1000\n-500\n")
	scenario := Scenario{
		Name:               "from file",
		Type:               ScenarioCashflowValuation,
		AnnualDiscountRate: decimal.NewFromInt(8),
		CashflowFile:       path,
	}

	result, err := scenario.Run(calculation.NewEngine())
	require.NoError(t, err)
	require.NotNil(t, result.Cashflow)
	assert.True(t, result.Cashflow.TotalInflows.Equal(decimal.NewFromInt(1000)))
	assert.True(t, result.Cashflow.TotalOutflows.Equal(decimal.NewFromInt(500)))
}
