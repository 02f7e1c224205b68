package renderer

import (
	"fmt"

	"github.com/etnz/allocation"
)

// Report is a single simulation prepared for rendering.
type Report struct {
	Title       string             `json:"title"`
	Mix         string             `json:"mix"`
	From        int                `json:"from"`
	To          int                `json:"to"`
	Initial     allocation.Money   `json:"initial"`
	Final       allocation.Money   `json:"final"`
	Gain        allocation.Money   `json:"gain"`
	TotalReturn allocation.Percent `json:"totalReturn"`
	CAGR        allocation.Percent `json:"cagr"`
	Volatility  allocation.Percent `json:"volatility"`
	MaxDrawdown allocation.Percent `json:"maxDrawdown"`
	Sharpe      string             `json:"sharpe"`
	Rows        []YearRow          `json:"rows"`
}

// YearRow is one simulated year.
type YearRow struct {
	Year   int                `json:"year"`
	Return allocation.Percent `json:"return"`
	Value  allocation.Money   `json:"value"`
}

// NewReport prepares the result r of scenario s for rendering, with values in currency.
func NewReport(s allocation.Scenario, r *allocation.Result, currency string) *Report {
	p := r.Performance(currency)
	rep := &Report{
		Title:       "Bitcoin allocation simulation",
		Mix:         s.Mix.String(),
		Initial:     p.Start,
		Final:       p.End,
		Gain:        p.Change(),
		TotalReturn: p.Return,
		CAGR:        allocation.Percent(r.CAGR),
		Volatility:  allocation.Percent(r.Volatility),
		MaxDrawdown: allocation.Percent(r.MaxDrawdown),
		Sharpe:      FormatRatio(r.Sharpe),
	}
	for i, year := range r.Years {
		rep.Rows = append(rep.Rows, YearRow{
			Year:   year,
			Return: allocation.Percent(r.Returns[i]),
			Value:  allocation.M(r.Values[i], currency),
		})
	}
	if len(r.Years) > 0 {
		rep.From, rep.To = r.Years[0], r.Years[len(r.Years)-1]
	}
	return rep
}

// ComparisonReport is a Comparison prepared for rendering.
type ComparisonReport struct {
	Title  string          `json:"title"`
	Period string          `json:"period"`
	Rows   []ComparisonRow `json:"rows"`
}

// ComparisonRow is one mix of a comparison.
type ComparisonRow struct {
	Name        string             `json:"name"`
	Mix         string             `json:"mix"`
	Final       allocation.Money   `json:"final"`
	TotalReturn allocation.Percent `json:"totalReturn"`
	CAGR        allocation.Percent `json:"cagr"`
	Volatility  allocation.Percent `json:"volatility"`
	MaxDrawdown allocation.Percent `json:"maxDrawdown"`
	Sharpe      string             `json:"sharpe"`
}

// NewComparisonReport prepares c for rendering, with values in currency.
func NewComparisonReport(c *allocation.Comparison, currency string) *ComparisonReport {
	s := c.Scenario
	rep := &ComparisonReport{
		Title:  "Allocation comparison",
		Period: fmt.Sprintf("%s invested over %d years starting %d.", FormatCurrency(s.Initial, currency), max(s.Years, 0), s.StartYear),
	}
	for _, e := range c.Entries {
		r := e.Result
		rep.Rows = append(rep.Rows, ComparisonRow{
			Name:        e.Name,
			Mix:         e.Mix.String(),
			Final:       allocation.M(r.FinalValue, currency),
			TotalReturn: allocation.Percent(r.TotalReturn),
			CAGR:        allocation.Percent(r.CAGR),
			Volatility:  allocation.Percent(r.Volatility),
			MaxDrawdown: allocation.Percent(r.MaxDrawdown),
			Sharpe:      FormatRatio(r.Sharpe),
		})
	}
	return rep
}
