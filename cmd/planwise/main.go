package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/planwise/retirement-planner/internal/calculation"
	"github.com/planwise/retirement-planner/internal/domain"
	"github.com/planwise/retirement-planner/internal/output"
)

var (
	logLevelFlag     string
	logFormatFlag    string
	outputFormatFlag string
	writeFileFlag    bool
	depletionCapFlag int

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "planwise",
	Short: "Retirement planning calculator",
	Long: `Planwise answers the core retirement planning questions: how much can I
withdraw every month without outliving my corpus, how long does my corpus
last at a given withdrawal, what does a step-up SIP accumulate to, and what
is an arbitrary cashflow schedule worth today.

All amounts are monthly and all rates are annual percentages.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = initializeLogger(logLevelFlag, logFormatFlag)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().StringVarP(&outputFormatFlag, "format", "f", "console", "output format (console, csv, json)")
	rootCmd.PersistentFlags().BoolVarP(&writeFileFlag, "output", "o", false, "write a timestamped report file instead of printing to stdout")
	rootCmd.PersistentFlags().IntVar(&depletionCapFlag, "depletion-cap", calculation.DefaultDepletionCapMonths, "simulation cap in months for depletion runs")

	rootCmd.AddCommand(withdrawalCmd)
	rootCmd.AddCommand(durationCmd)
	rootCmd.AddCommand(sipCmd)
	rootCmd.AddCommand(cashflowCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exampleConfigCmd)
}

// newEngine builds an engine wired to the CLI logger and flags.
func newEngine() *calculation.Engine {
	return calculation.NewEngine(
		calculation.WithDepletionCap(depletionCapFlag),
		calculation.WithLogger(newEngineLogger(logger)),
	)
}

// emit renders results with the selected formatter, either to stdout or to a
// timestamped report file.
func emit(results []domain.ScenarioResult) error {
	formatter := output.GetFormatterByName(outputFormatFlag)
	if formatter == nil {
		return fmt.Errorf("unknown output format %q (available: %v)", outputFormatFlag, output.AvailableFormatterNames())
	}

	if writeFileFlag {
		ext := formatter.Name()
		if ext == "console" {
			ext = "txt"
		}
		filename, err := output.WriteFormatted(formatter, results, ext)
		if err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logger.Info("report written", zap.String("file", filename))
		return nil
	}

	data, err := formatter.Format(results)
	if err != nil {
		return fmt.Errorf("failed to format results: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
