package output

import (
	"bytes"
	"fmt"

	"github.com/planwise/retirement-planner/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results []domain.ScenarioResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "RETIREMENT PLAN SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, result := range results {
		fmt.Fprintf(&buf, "%s:\n", result.Name)
		switch {
		case result.Withdrawal != nil:
			w := result.Withdrawal
			fmt.Fprintf(&buf, "  Initial Monthly Withdrawal: %s\n", FormatCurrency(w.SustainableMonthlyWithdrawal))
			fmt.Fprintf(&buf, "  Final Monthly Withdrawal:   %s\n", FormatCurrency(w.FinalMonthlyWithdrawal))
			fmt.Fprintf(&buf, "  Total Withdrawn:            %s over %d months\n", FormatCurrency(w.TotalWithdrawn), len(w.Trajectory))
		case result.Depletion != nil:
			d := result.Depletion
			if d.Depleted() {
				fmt.Fprintf(&buf, "  Corpus Lasts: %d months (%s years)\n", *d.DepletionMonth, d.DurationYears.StringFixed(1))
			} else {
				fmt.Fprintf(&buf, "  Corpus Lasts: beyond the %d month simulation cap\n", len(d.Trajectory))
			}
			fmt.Fprintf(&buf, "  Total Withdrawn: %s\n", FormatCurrency(d.TotalWithdrawn))
		case result.SIP != nil:
			s := result.SIP
			fmt.Fprintf(&buf, "  Final Corpus:    %s\n", FormatCurrency(s.FutureValue))
			fmt.Fprintf(&buf, "  Total Invested:  %s\n", FormatCurrency(s.TotalInvested))
			fmt.Fprintf(&buf, "  Returns Earned:  %s\n", FormatCurrency(s.ReturnsEarned))
		case result.Cashflow != nil:
			cf := result.Cashflow
			fmt.Fprintf(&buf, "  Present Value: %s\n", FormatCurrency(cf.PresentValue))
			fmt.Fprintf(&buf, "  Future Value:  %s\n", FormatCurrency(cf.FutureValue))
			fmt.Fprintf(&buf, "  Inflows=%s Outflows=%s Net=%s\n",
				FormatCurrency(cf.TotalInflows), FormatCurrency(cf.TotalOutflows), FormatCurrency(cf.NetCashflow))
		default:
			fmt.Fprintln(&buf, "  (no result)")
		}
		fmt.Fprintln(&buf)
	}
	return buf.Bytes(), nil
}
