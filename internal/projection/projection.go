package projection

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is wrapped by every validation failure so callers can
// classify rejections with errors.Is.
var ErrInvalidInput = errors.New("invalid projection input")

// Input describes one savings scenario. Amounts are currency units;
// rates are annual percentages. The model enforces no upper bounds —
// clamping slider ranges is a presentation concern.
type Input struct {
	Initial       float64 // once-off lump sum
	Monthly       float64 // recurring contribution at the start of the horizon
	Years         int     // horizon, floored to 1
	GrowthPct     float64 // expected annual growth, may be 0
	EscalationPct float64 // annual contribution increase, may be 0
}

// YearPoint is one chronological snapshot of the simulated balance,
// taken after each completed year.
type YearPoint struct {
	Year    int     `json:"year"`
	Balance float64 `json:"balance"`
}

// Result is immutable once produced; it is recomputed from scratch on
// every input change rather than incrementally updated.
type Result struct {
	Series             []YearPoint `json:"series"`
	FinalValue         float64     `json:"final_value"`
	TotalContributions float64     `json:"total_contributions"`
}

// Gain is the growth portion of the final value.
func (r *Result) Gain() float64 {
	return r.FinalValue - r.TotalContributions
}

func checkField(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be a finite number", ErrInvalidInput, name)
	}
	if v < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidInput, name)
	}
	return nil
}

// Simulate steps the scenario month by month. A closed-form annuity
// formula cannot express mid-horizon escalation, so the simulation is
// iterative: at each year boundary after the first the contribution is
// escalated, then every month the contribution is added and one month
// of growth applied. No rounding happens here; rounding to whole
// currency units is done only when formatting for display.
func Simulate(in Input) (*Result, error) {
	if err := checkField("initial", in.Initial); err != nil {
		return nil, err
	}
	if err := checkField("monthly", in.Monthly); err != nil {
		return nil, err
	}
	if err := checkField("growth", in.GrowthPct); err != nil {
		return nil, err
	}
	if err := checkField("escalation", in.EscalationPct); err != nil {
		return nil, err
	}

	years := in.Years
	if years < 1 {
		years = 1
	}
	months := years * 12
	monthlyRate := in.GrowthPct / 100 / 12

	balance := in.Initial
	contribution := in.Monthly
	totalContributed := in.Initial
	series := make([]YearPoint, 0, years)

	for m := 1; m <= months; m++ {
		// escalate at the start of each new year, except the first
		if m > 1 && (m-1)%12 == 0 {
			contribution *= 1 + in.EscalationPct/100
		}
		balance = (balance + contribution) * (1 + monthlyRate)
		totalContributed += contribution
		if m%12 == 0 {
			series = append(series, YearPoint{Year: m / 12, Balance: balance})
		}
	}

	return &Result{
		Series:             series,
		FinalValue:         balance,
		TotalContributions: totalContributed,
	}, nil
}
