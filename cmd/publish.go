package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"text/template"

	"github.com/etnz/allocation"
	"github.com/etnz/allocation/renderer"
	"github.com/etnz/allocation/returns"
	"github.com/google/subcommands"
)

// publication is what the front matter template is executed with.
type publication struct {
	Scenario allocation.Scenario
	Result   *allocation.Result
	Currency string
}

type publishCmd struct {
	scenarioFlags
	outputDir      string
	frontMatterTpl string
}

func (*publishCmd) Name() string { return "publish" }

func (*publishCmd) Synopsis() string { return "generates the simulation pages for the website" }

func (*publishCmd) Usage() string {
	return `publish [simulate flags] [-o <dir>] [-frontmatter <file>]

  Simulates the allocation and writes in the output directory:
    report.md    the simulation and comparison report
    report.html  the same report as an HTML fragment
    chart.svg    the comparison chart
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	c.scenarioFlags.SetFlags(f)
	f.StringVar(&c.outputDir, "o", "site", "Directory for the generated files")
	f.StringVar(&c.frontMatterTpl, "frontmatter", "", "Path to a Go template file for the report front matter")
}

func (c *publishCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var frontMatterTpl *template.Template
	if c.frontMatterTpl != "" {
		var err error
		frontMatterTpl, err = template.ParseFiles(c.frontMatterTpl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to parse front matter template: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	table, err := DecodeReturns()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load returns: %v\n", err)
		return subcommands.ExitFailure
	}
	scenario, settings, err := c.Scenario(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	files, err := publishFiles(scenario, table, Currency(settings), frontMatterTpl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate files: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := os.MkdirAll(c.outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create output directory: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, name := range []string{"report.md", "report.html", "chart.svg"} {
		fullPath := filepath.Join(c.outputDir, name)
		if err := os.WriteFile(fullPath, files[name], 0644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write file %s: %v\n", fullPath, err)
			return subcommands.ExitFailure
		}
		log.Printf("Generated %s", fullPath)
	}
	return subcommands.ExitSuccess
}

// publishFiles returns the content of the published files by name.
func publishFiles(scenario allocation.Scenario, table *returns.Table, currency string, frontMatterTpl *template.Template) (map[string][]byte, error) {
	cmp := allocation.Compare(table, scenario, allocation.DefaultBenchmarks...)
	result := cmp.Entries[0].Result

	md := renderer.RenderReport(renderer.NewReport(scenario, result, currency)) + "\n" +
		renderer.RenderComparison(renderer.NewComparisonReport(cmp, currency))

	html, err := renderer.HTML(md)
	if err != nil {
		return nil, err
	}

	chart, err := renderer.LineChart(cmp, renderer.ChartOptions{Format: renderer.SVG, Currency: currency})
	if err != nil {
		return nil, err
	}

	// Generate frontmatter if template is provided
	if frontMatterTpl != nil {
		var fm bytes.Buffer
		if err := frontMatterTpl.Execute(&fm, publication{scenario, result, currency}); err != nil {
			return nil, fmt.Errorf("failed to render front matter: %w", err)
		}
		md = fm.String() + "\n" + md
	}

	return map[string][]byte{
		"report.md":   []byte(md),
		"report.html": []byte(html),
		"chart.svg":   chart,
	}, nil
}
