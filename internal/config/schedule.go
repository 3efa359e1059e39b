package config

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/planwise/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// LoadCashflowSchedule reads a single-column CSV of signed monthly cashflows.
// A non-numeric first row is treated as a header ("Cashflow" in the original
// planner's upload contract); any later non-numeric value is an error.
func LoadCashflowSchedule(filename string) (domain.CashflowSchedule, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open cashflow file %s: %w", filename, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse cashflow file %s: %w", filename, err)
	}

	schedule := make(domain.CashflowSchedule, 0, len(rows))
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		field := strings.TrimSpace(row[0])
		if field == "" {
			continue
		}
		value, err := decimal.NewFromString(field)
		if err != nil {
			if i == 0 {
				continue
			}
			return nil, fmt.Errorf("cashflow file %s row %d: invalid value %q", filename, i+1, field)
		}
		schedule = append(schedule, value)
	}

	if len(schedule) == 0 {
		return nil, fmt.Errorf("cashflow file %s contains no cashflow values", filename)
	}
	return schedule, nil
}

// SampleCashflowSchedule returns the twelve-month sample schedule the
// original planner offered for exploration: mixed inflows and outflows.
func SampleCashflowSchedule() []decimal.Decimal {
	values := []int64{50000, 52000, 54000, -30000, -31000, 60000, 62000, -35000, 65000, 67000, -40000, 70000}
	schedule := make([]decimal.Decimal, len(values))
	for i, v := range values {
		schedule[i] = decimal.NewFromInt(v)
	}
	return schedule
}
