package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/planwise/retirement-planner/internal/config"
	"github.com/planwise/retirement-planner/internal/domain"
	"github.com/planwise/retirement-planner/internal/server"
)

// horizonMonths resolves the --months / --years flag pair. --months wins when
// both are set.
func horizonMonths(months, years int) int {
	if months > 0 {
		return months
	}
	return years * 12
}

var (
	withdrawalCorpus    float64
	withdrawalReturn    float64
	withdrawalInflation float64
	withdrawalMonths    int
	withdrawalYears     int
)

var withdrawalCmd = &cobra.Command{
	Use:   "withdrawal",
	Short: "Compute the sustainable inflation-growing monthly withdrawal",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := newEngine()
		result, err := engine.SustainableWithdrawal(domain.WithdrawalPlanInput{
			Corpus:              decimal.NewFromFloat(withdrawalCorpus),
			AnnualReturnRate:    decimal.NewFromFloat(withdrawalReturn),
			AnnualInflationRate: decimal.NewFromFloat(withdrawalInflation),
			HorizonMonths:       horizonMonths(withdrawalMonths, withdrawalYears),
		})
		if err != nil {
			return err
		}
		return emit([]domain.ScenarioResult{{Name: "sustainable withdrawal", Withdrawal: result}})
	},
}

var (
	durationCorpus     float64
	durationReturn     float64
	durationInflation  float64
	durationWithdrawal float64
)

var durationCmd = &cobra.Command{
	Use:   "duration",
	Short: "Compute how long a corpus lasts under a growing withdrawal",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := newEngine()
		result, err := engine.DepletionDuration(domain.DepletionInput{
			Corpus:                   decimal.NewFromFloat(durationCorpus),
			AnnualReturnRate:         decimal.NewFromFloat(durationReturn),
			AnnualInflationRate:      decimal.NewFromFloat(durationInflation),
			InitialMonthlyWithdrawal: decimal.NewFromFloat(durationWithdrawal),
		})
		if err != nil {
			return err
		}
		return emit([]domain.ScenarioResult{{Name: "corpus duration", Depletion: result}})
	},
}

var (
	sipContribution float64
	sipReturn       float64
	sipStepUp       float64
	sipMonths       int
	sipYears        int
)

var sipCmd = &cobra.Command{
	Use:   "sip",
	Short: "Compute the future value of a step-up SIP",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := newEngine()
		result, err := engine.StepUpFutureValue(domain.StepUpSIPInput{
			MonthlyContribution: decimal.NewFromFloat(sipContribution),
			AnnualReturnRate:    decimal.NewFromFloat(sipReturn),
			AnnualStepUpPercent: decimal.NewFromFloat(sipStepUp),
			HorizonMonths:       horizonMonths(sipMonths, sipYears),
		})
		if err != nil {
			return err
		}
		return emit([]domain.ScenarioResult{{Name: "step-up sip", SIP: result}})
	},
}

var (
	cashflowFile     string
	cashflowSample   bool
	cashflowDiscount float64
)

var cashflowCmd = &cobra.Command{
	Use:   "cashflow",
	Short: "Value a monthly cashflow schedule from a CSV file",
	RunE: func(cmd *cobra.Command, args []string) error {
		var schedule domain.CashflowSchedule
		switch {
		case cashflowSample:
			schedule = config.SampleCashflowSchedule()
		case cashflowFile != "":
			var err error
			schedule, err = config.LoadCashflowSchedule(cashflowFile)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("either --file or --sample is required")
		}

		engine := newEngine()
		result, err := engine.ValueSchedule(domain.CashflowValuationInput{
			Schedule:           schedule,
			AnnualDiscountRate: decimal.NewFromFloat(cashflowDiscount),
		})
		if err != nil {
			return err
		}
		return emit([]domain.ScenarioResult{{Name: "cashflow valuation", Cashflow: result}})
	},
}

var runCmd = &cobra.Command{
	Use:   "run <config.yaml>",
	Short: "Run every scenario in a YAML configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}
		logger.Info("configuration loaded",
			zap.String("file", args[0]),
			zap.Int("scenarios", len(cfg.Scenarios)))

		engine := cfg.NewEngine()
		engine.SetLogger(newEngineLogger(logger))

		results, err := cfg.RunAll(engine)
		if err != nil {
			return err
		}
		return emit(results)
	},
}

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculations as JSON-over-HTTP endpoints",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := serveAddr
		if addr == "" {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			addr = ":" + port
		}
		srv := server.New(newEngine(), logger)
		return srv.ListenAndServe(addr)
	},
}

var exampleConfigCmd = &cobra.Command{
	Use:   "example-config",
	Short: "Print an example scenario configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.NewInputParser().CreateExampleConfiguration()
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to render example configuration: %w", err)
		}
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	withdrawalCmd.Flags().Float64Var(&withdrawalCorpus, "corpus", 0, "starting corpus")
	withdrawalCmd.Flags().Float64Var(&withdrawalReturn, "return", 0, "annual return rate in percent")
	withdrawalCmd.Flags().Float64Var(&withdrawalInflation, "inflation", 0, "annual inflation rate in percent")
	withdrawalCmd.Flags().IntVar(&withdrawalMonths, "months", 0, "horizon in months")
	withdrawalCmd.Flags().IntVar(&withdrawalYears, "years", 0, "horizon in years (ignored when --months is set)")

	durationCmd.Flags().Float64Var(&durationCorpus, "corpus", 0, "starting corpus")
	durationCmd.Flags().Float64Var(&durationReturn, "return", 0, "annual return rate in percent")
	durationCmd.Flags().Float64Var(&durationInflation, "inflation", 0, "annual inflation rate in percent")
	durationCmd.Flags().Float64Var(&durationWithdrawal, "withdrawal", 0, "first month's withdrawal")

	sipCmd.Flags().Float64Var(&sipContribution, "contribution", 0, "first month's contribution")
	sipCmd.Flags().Float64Var(&sipReturn, "return", 0, "annual return rate in percent")
	sipCmd.Flags().Float64Var(&sipStepUp, "stepup", 0, "annual step-up in percent")
	sipCmd.Flags().IntVar(&sipMonths, "months", 0, "horizon in months")
	sipCmd.Flags().IntVar(&sipYears, "years", 0, "horizon in years (ignored when --months is set)")

	cashflowCmd.Flags().StringVar(&cashflowFile, "file", "", "CSV file with one signed cashflow per row")
	cashflowCmd.Flags().BoolVar(&cashflowSample, "sample", false, "use the built-in sample schedule")
	cashflowCmd.Flags().Float64Var(&cashflowDiscount, "discount", 0, "annual discount rate in percent")

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (defaults to :$PORT or :8080)")
}
