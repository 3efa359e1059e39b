package config

import (
	"fmt"
	"os"

	"github.com/planwise/retirement-planner/internal/calculation"
	"github.com/planwise/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Scenario types accepted in a scenario file.
const (
	ScenarioSustainableWithdrawal = "sustainable_withdrawal"
	ScenarioDepletionDuration     = "depletion_duration"
	ScenarioStepUpSIP             = "stepup_sip"
	ScenarioCashflowValuation     = "cashflow_valuation"
)

// Scenario is one calculation request from a scenario file. The fields are a
// superset across scenario types; which ones are required depends on Type.
type Scenario struct {
	Name                     string            `yaml:"name" json:"name"`
	Type                     string            `yaml:"type" json:"type"`
	Corpus                   decimal.Decimal   `yaml:"corpus" json:"corpus"`
	AnnualReturnRate         decimal.Decimal   `yaml:"annual_return_rate" json:"annual_return_rate"`
	AnnualInflationRate      decimal.Decimal   `yaml:"annual_inflation_rate" json:"annual_inflation_rate"`
	AnnualDiscountRate       decimal.Decimal   `yaml:"annual_discount_rate" json:"annual_discount_rate"`
	AnnualStepUpPercent      decimal.Decimal   `yaml:"annual_stepup_percent" json:"annual_stepup_percent"`
	HorizonMonths            int               `yaml:"horizon_months" json:"horizon_months"`
	InitialMonthlyWithdrawal decimal.Decimal   `yaml:"initial_monthly_withdrawal" json:"initial_monthly_withdrawal"`
	MonthlyContribution      decimal.Decimal   `yaml:"monthly_contribution" json:"monthly_contribution"`
	Cashflows                []decimal.Decimal `yaml:"cashflows" json:"cashflows"`
	CashflowFile             string            `yaml:"cashflow_file" json:"cashflow_file"`
}

// Configuration is the root of a scenario file.
type Configuration struct {
	DepletionCapMonths int        `yaml:"depletion_cap_months" json:"depletion_cap_months"`
	Scenarios          []Scenario `yaml:"scenarios" json:"scenarios"`
}

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *Configuration) error {
	if config.DepletionCapMonths < 0 {
		return fmt.Errorf("depletion cap months cannot be negative")
	}

	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	for i, scenario := range config.Scenarios {
		if err := ip.validateScenario(&scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
	}

	return nil
}

// validateScenario validates a single scenario against its type's
// requirements. Rate plausibility is left to the engine; this layer only
// checks structural completeness.
func (ip *InputParser) validateScenario(scenario *Scenario) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}

	switch scenario.Type {
	case ScenarioSustainableWithdrawal:
		if scenario.Corpus.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("corpus must be positive")
		}
		if scenario.HorizonMonths <= 0 {
			return fmt.Errorf("horizon months must be positive")
		}
	case ScenarioDepletionDuration:
		if scenario.Corpus.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("corpus must be positive")
		}
		if scenario.InitialMonthlyWithdrawal.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("initial monthly withdrawal must be positive")
		}
	case ScenarioStepUpSIP:
		if scenario.MonthlyContribution.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("monthly contribution must be positive")
		}
		if scenario.HorizonMonths <= 0 {
			return fmt.Errorf("horizon months must be positive")
		}
		if scenario.AnnualStepUpPercent.LessThan(decimal.Zero) {
			return fmt.Errorf("annual step-up percent cannot be negative")
		}
	case ScenarioCashflowValuation:
		if len(scenario.Cashflows) == 0 && scenario.CashflowFile == "" {
			return fmt.Errorf("either cashflows or cashflow_file is required")
		}
	default:
		return fmt.Errorf("scenario type must be '%s', '%s', '%s', or '%s'",
			ScenarioSustainableWithdrawal, ScenarioDepletionDuration,
			ScenarioStepUpSIP, ScenarioCashflowValuation)
	}

	return nil
}

// Run executes the scenario against the engine and wraps the calculation
// result with the scenario name.
func (s *Scenario) Run(engine *calculation.Engine) (*domain.ScenarioResult, error) {
	result := &domain.ScenarioResult{Name: s.Name}

	switch s.Type {
	case ScenarioSustainableWithdrawal:
		withdrawal, err := engine.SustainableWithdrawal(domain.WithdrawalPlanInput{
			Corpus:              s.Corpus,
			AnnualReturnRate:    s.AnnualReturnRate,
			AnnualInflationRate: s.AnnualInflationRate,
			HorizonMonths:       s.HorizonMonths,
		})
		if err != nil {
			return nil, err
		}
		result.Withdrawal = withdrawal
	case ScenarioDepletionDuration:
		depletion, err := engine.DepletionDuration(domain.DepletionInput{
			Corpus:                   s.Corpus,
			AnnualReturnRate:         s.AnnualReturnRate,
			AnnualInflationRate:      s.AnnualInflationRate,
			InitialMonthlyWithdrawal: s.InitialMonthlyWithdrawal,
		})
		if err != nil {
			return nil, err
		}
		result.Depletion = depletion
	case ScenarioStepUpSIP:
		sip, err := engine.StepUpFutureValue(domain.StepUpSIPInput{
			MonthlyContribution: s.MonthlyContribution,
			AnnualReturnRate:    s.AnnualReturnRate,
			AnnualStepUpPercent: s.AnnualStepUpPercent,
			HorizonMonths:       s.HorizonMonths,
		})
		if err != nil {
			return nil, err
		}
		result.SIP = sip
	case ScenarioCashflowValuation:
		schedule := domain.CashflowSchedule(s.Cashflows)
		if len(schedule) == 0 && s.CashflowFile != "" {
			loaded, err := LoadCashflowSchedule(s.CashflowFile)
			if err != nil {
				return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
			}
			schedule = loaded
		}
		valuation, err := engine.ValueSchedule(domain.CashflowValuationInput{
			Schedule:           schedule,
			AnnualDiscountRate: s.AnnualDiscountRate,
		})
		if err != nil {
			return nil, err
		}
		result.Cashflow = valuation
	default:
		return nil, fmt.Errorf("unknown scenario type %q", s.Type)
	}

	return result, nil
}

// RunAll executes every scenario in the configuration in order.
func (c *Configuration) RunAll(engine *calculation.Engine) ([]domain.ScenarioResult, error) {
	results := make([]domain.ScenarioResult, 0, len(c.Scenarios))
	for i := range c.Scenarios {
		result, err := c.Scenarios[i].Run(engine)
		if err != nil {
			return nil, fmt.Errorf("scenario %q failed: %w", c.Scenarios[i].Name, err)
		}
		results = append(results, *result)
	}
	return results, nil
}

// NewEngine builds a calculation engine honoring the configuration's
// depletion cap.
func (c *Configuration) NewEngine(opts ...calculation.Option) *calculation.Engine {
	if c.DepletionCapMonths > 0 {
		opts = append([]calculation.Option{calculation.WithDepletionCap(c.DepletionCapMonths)}, opts...)
	}
	return calculation.NewEngine(opts...)
}

// CreateExampleConfiguration creates an example configuration covering every
// scenario type.
func (ip *InputParser) CreateExampleConfiguration() *Configuration {
	return &Configuration{
		DepletionCapMonths: calculation.DefaultDepletionCapMonths,
		Scenarios: []Scenario{
			{
				Name:                "corpus to monthly withdrawal",
				Type:                ScenarioSustainableWithdrawal,
				Corpus:              decimal.NewFromInt(10000000),
				AnnualReturnRate:    decimal.NewFromInt(8),
				AnnualInflationRate: decimal.NewFromInt(6),
				HorizonMonths:       300,
			},
			{
				Name:                     "withdrawal to corpus duration",
				Type:                     ScenarioDepletionDuration,
				Corpus:                   decimal.NewFromInt(10000000),
				AnnualReturnRate:         decimal.NewFromInt(8),
				AnnualInflationRate:      decimal.NewFromInt(6),
				InitialMonthlyWithdrawal: decimal.NewFromInt(80000),
			},
			{
				Name:                "monthly savings to corpus",
				Type:                ScenarioStepUpSIP,
				MonthlyContribution: decimal.NewFromInt(50000),
				AnnualReturnRate:    decimal.NewFromInt(12),
				AnnualStepUpPercent: decimal.NewFromInt(10),
				HorizonMonths:       240,
			},
			{
				Name:               "custom cashflow analysis",
				Type:               ScenarioCashflowValuation,
				AnnualDiscountRate: decimal.NewFromInt(8),
				Cashflows:          SampleCashflowSchedule(),
			},
		},
	}
}
