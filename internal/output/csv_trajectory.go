package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/planwise/retirement-planner/internal/domain"
)

// CSVTrajectoryExporter implements the month-by-month breakdown export (one
// row per period per scenario), mirroring the downloadable table of the
// planner's presentation layer.
type CSVTrajectoryExporter struct{}

func (c CSVTrajectoryExporter) Name() string { return "csv" }

func (c CSVTrajectoryExporter) Format(results []domain.ScenarioResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Month", "Year", "OpeningBalance", "Growth", "Cashflow", "ClosingBalance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, result := range results {
		for _, period := range result.Trajectory() {
			row := []string{
				result.Name,
				strconv.Itoa(period.Month),
				strconv.Itoa(period.Year),
				period.OpeningBalance.StringFixed(2),
				period.Growth.StringFixed(2),
				period.Cashflow.StringFixed(2),
				period.ClosingBalance.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
