package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InvalidRateError reports an annual percentage rate whose compounding base
// (1 + rate/100) is not positive. A fractional root of such a base is
// undefined, so the rate cannot be converted to a monthly equivalent.
type InvalidRateError struct {
	AnnualRatePercent decimal.Decimal
}

func (e *InvalidRateError) Error() string {
	return fmt.Sprintf("invalid annual rate %s%%: compounding base must be positive", e.AnnualRatePercent.StringFixed(2))
}

// InvalidInputError reports a calculation input that failed validation. It is
// raised before any simulation loop runs, so a calculation either returns a
// complete result or no result at all.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

// EmptyScheduleError reports a cashflow schedule with no entries.
type EmptyScheduleError struct{}

func (e *EmptyScheduleError) Error() string {
	return "cashflow schedule has no entries"
}
