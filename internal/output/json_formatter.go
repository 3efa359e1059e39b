package output

import (
	"github.com/goccy/go-json"

	"github.com/planwise/retirement-planner/internal/domain"
)

// JSONFormatter serializes the scenario results as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results []domain.ScenarioResult) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
