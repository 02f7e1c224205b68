package allocation

import (
	"fmt"
	"math"

	"github.com/etnz/allocation/returns"
	"github.com/etnz/allocation/stats"
)

// RiskFreeRate is the annual risk-free return, in percent, used by the
// Sharpe ratio of a simulation.
const RiskFreeRate = 2

// Bounds of a valid scenario. With the compounding of MaxYears of any
// tabulated return, MaxInitialValue stays well within the float64 range.
const (
	MaxYears        = 100
	MaxInitialValue = 1e15
)

// Scenario is the input of a simulation.
type Scenario struct {
	Initial   float64 `json:"initialValue"` // starting portfolio value
	Mix       Mix     `json:"mix"`
	Years     int     `json:"years"`     // number of years to replay
	StartYear int     `json:"startYear"` // first calendar year replayed
}

// NewScenario returns a scenario of years starting in startYear.
func NewScenario(initial float64, mix Mix, years, startYear int) Scenario {
	return Scenario{Initial: initial, Mix: mix, Years: years, StartYear: startYear}
}

// Validate returns an error unless s has a valid mix, a finite initial value
// between 0 and MaxInitialValue, and at most MaxYears years.
//
// Simulate accepts any scenario; Validate is for inputs coming from users.
func (s Scenario) Validate() error {
	if !s.Mix.Valid() {
		return fmt.Errorf("invalid allocation %s: weights must be positive and sum to 100", s.Mix)
	}
	if math.IsNaN(s.Initial) || s.Initial < 0 || s.Initial > MaxInitialValue {
		return fmt.Errorf("invalid initial value %g: must be between 0 and %g", s.Initial, float64(MaxInitialValue))
	}
	if s.Years > MaxYears {
		return fmt.Errorf("invalid years %d: at most %d", s.Years, MaxYears)
	}
	return nil
}

// Simulate replays the annual returns of t for s.
//
// Every year, the portfolio grows by the return of each asset weighted by the
// mix. Years missing from t use the latest tabulated return. Simulate is pure
// and never fails: zero years, a zero or negative initial value or a flat
// trajectory all produce zero statistics instead.
func Simulate(t *returns.Table, s Scenario) *Result {
	years := max(s.Years, 0)
	r := &Result{
		Initial: s.Initial,
		Years:   make([]int, 0, years),
		Values:  make([]float64, 0, years),
		Returns: make([]float64, 0, years),
	}

	value, peak := s.Initial, s.Initial
	for i := range years {
		year := s.StartYear + i

		var weighted float64
		for _, a := range returns.Assets {
			weighted += s.Mix.Weight(a) / 100 * t.Lookup(a, year)
		}
		r.Returns = append(r.Returns, weighted)

		value *= 1 + weighted/100
		r.Years = append(r.Years, year)
		r.Values = append(r.Values, value)

		peak = max(peak, value)
		if peak != 0 {
			if dd := (peak - value) / peak * 100; dd > r.MaxDrawdown {
				r.MaxDrawdown = dd
			}
		}
	}

	r.FinalValue = value
	r.TotalReturn = float64(Growth(s.Initial, r.FinalValue))
	r.CAGR = stats.CAGROrZero(s.Initial, r.FinalValue, years)
	r.Volatility = stats.StandardDeviation(r.Returns)
	if r.Volatility != 0 {
		r.Sharpe = (r.CAGR - RiskFreeRate) / r.Volatility
	}
	return r
}
