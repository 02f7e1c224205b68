package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/allocation"
	"github.com/etnz/allocation/renderer"
	"github.com/google/subcommands"
)

type compareCmd struct {
	scenarioFlags
	json  bool
	chart string
}

func (*compareCmd) Name() string { return "compare" }
func (*compareCmd) Synopsis() string {
	return "compares an allocation with stocks only and a classic 60/40"
}
func (*compareCmd) Usage() string {
	return `alloc compare [simulate flags] [-json] [-chart <file.png|file.svg>]

  Simulates the allocation, a 100% stocks portfolio and a 60% stocks 40% bonds
  portfolio over the same period and prints them side by side.
  With -chart, also draws their values in a line chart.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	c.scenarioFlags.SetFlags(f)
	f.BoolVar(&c.json, "json", false, "Print the comparison as JSON")
	f.StringVar(&c.chart, "chart", "", "Write a line chart to this file, PNG or SVG depending on the extension")
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, err := DecodeReturns()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading returns: %v\n", err)
		return subcommands.ExitFailure
	}
	scenario, settings, err := c.Scenario(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	cur := Currency(settings)
	cmp := allocation.Compare(table, scenario, allocation.DefaultBenchmarks...)

	if c.chart != "" {
		if err := writeChart(c.chart, cmp, cur); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		log.Printf("chart written to %s", c.chart)
	}

	if c.json {
		data, err := json.MarshalIndent(cmp, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(data))
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RenderComparison(renderer.NewComparisonReport(cmp, cur)))
	return subcommands.ExitSuccess
}

// chartFormat returns the chart format matching filename's extension.
func chartFormat(filename string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png":
		return renderer.PNG, nil
	case ".svg":
		return renderer.SVG, nil
	default:
		return "", fmt.Errorf("unsupported chart file %q: want a .png or .svg extension", filename)
	}
}

func writeChart(filename string, cmp *allocation.Comparison, currency string) error {
	format, err := chartFormat(filename)
	if err != nil {
		return err
	}
	img, err := renderer.LineChart(cmp, renderer.ChartOptions{Format: format, Currency: currency})
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, img, 0644); err != nil {
		return fmt.Errorf("cannot write chart: %w", err)
	}
	return nil
}
