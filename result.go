package allocation

// Result is the outcome of a simulation.
//
// Years, Values and Returns are parallel: Values[i] is the portfolio value at
// the end of Years[i], after a weighted return of Returns[i] percent.
type Result struct {
	Years   []int
	Values  []float64
	Returns []float64

	Initial     float64
	FinalValue  float64
	TotalReturn float64 // percent
	CAGR        float64 // percent
	Volatility  float64 // population standard deviation of Returns
	MaxDrawdown float64 // percent
	Sharpe      float64
}

// Performance returns the overall performance of r in currency.
func (r *Result) Performance(currency string) Performance {
	return NewPerformanceWithReturn(M(r.Initial, currency), M(r.FinalValue, currency), Percent(r.TotalReturn))
}

// Len returns the number of simulated years.
func (r *Result) Len() int { return len(r.Years) }

// MarshalJSON encodes r with a stable key order.
func (r *Result) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	// nil slices would be encoded as null.
	w.Append("years", nonNil(r.Years))
	w.Append("values", nonNil(r.Values))
	w.Append("returns", nonNil(r.Returns))
	w.Append("initialValue", r.Initial)
	w.Append("finalValue", r.FinalValue)
	w.Append("totalReturn", r.TotalReturn)
	w.Append("cagr", r.CAGR)
	w.Append("volatility", r.Volatility)
	w.Append("maxDrawdown", r.MaxDrawdown)
	w.Append("sharpe", r.Sharpe)
	return w.MarshalJSON()
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
