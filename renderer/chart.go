package renderer

import (
	"errors"
	"fmt"

	"github.com/etnz/allocation"
	"github.com/vicanso/go-charts/v2"
)

// Chart output formats.
const (
	PNG = "png"
	SVG = "svg"
)

// ChartOptions configures LineChart.
type ChartOptions struct {
	Format        string // PNG or SVG, defaults to PNG
	Width, Height int    // in pixels, library defaults when zero
	Currency      string // for the subtitle
}

// LineChart draws the value trajectory of every entry of c, one line per
// entry, from the initial value to the end of the period.
func LineChart(c *allocation.Comparison, opts ChartOptions) ([]byte, error) {
	if len(c.Entries) == 0 {
		return nil, errors.New("nothing to chart: no entries")
	}
	years := c.Entries[0].Result.Years
	if len(years) == 0 {
		return nil, errors.New("nothing to chart: no simulated year")
	}

	values := make([][]float64, 0, len(c.Entries))
	for _, e := range c.Entries {
		line := make([]float64, 0, len(e.Result.Values)+1)
		line = append(line, e.Result.Initial)
		line = append(line, e.Result.Values...)
		values = append(values, line)
	}
	names := c.Names()

	seriesList := charts.NewSeriesListDataFromValues(values, charts.ChartTypeLine)
	for i := range seriesList {
		seriesList[i].Name = names[i]
	}

	yMin, yMax := paddedRange(values)
	subtitle := fmt.Sprintf("%s invested in %d", FormatCurrency(c.Scenario.Initial, opts.Currency), c.Scenario.StartYear)

	options := []charts.OptionFunc{
		charts.TitleTextOptionFunc("Portfolio value", subtitle),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        YearLabels(years),
			BoundaryGap: charts.FalseFlag(),
		}),
		charts.YAxisOptionFunc(charts.YAxisOption{
			Min:         &yMin,
			Max:         &yMax,
			DivideCount: 5,
		}),
		charts.LegendOptionFunc(charts.LegendOption{Data: names}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	}
	switch opts.Format {
	case SVG:
		options = append(options, charts.SVGTypeOption())
	case PNG, "":
		options = append(options, charts.PNGTypeOption())
	default:
		return nil, fmt.Errorf("unsupported chart format %q, want %s or %s", opts.Format, PNG, SVG)
	}
	if opts.Width > 0 {
		options = append(options, charts.WidthOptionFunc(opts.Width))
	}
	if opts.Height > 0 {
		options = append(options, charts.HeightOptionFunc(opts.Height))
	}

	p, err := charts.Render(charts.ChartOption{SeriesList: seriesList}, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to generate chart bytes: %w", err)
	}
	return buf, nil
}

// paddedRange returns the y axis range covering all values with a 5% margin.
func paddedRange(values [][]float64) (lo, hi float64) {
	first := true
	for _, line := range values {
		for _, v := range line {
			if first {
				lo, hi, first = v, v, false
				continue
			}
			lo, hi = min(lo, v), max(hi, v)
		}
	}
	padding := (hi - lo) * 0.05
	if padding == 0 {
		padding = max(hi, -hi) * 0.05
	}
	if padding == 0 {
		padding = 1
	}
	return lo - padding, hi + padding
}
