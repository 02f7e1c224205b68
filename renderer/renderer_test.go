package renderer

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"
	"text/template"

	"github.com/etnz/allocation"
	"github.com/etnz/allocation/returns"
)

func sampleReport() *Report {
	s := allocation.NewScenario(1_000_000, allocation.NewMix(100, 0, 0), 3, 2014)
	return NewReport(s, allocation.Simulate(returns.Historical(), s), "USD")
}

func sampleComparison() *allocation.Comparison {
	s := allocation.NewScenario(10_000, allocation.NewMix(60, 30, 10), 5, 2016)
	return allocation.Compare(returns.Historical(), s, allocation.DefaultBenchmarks...)
}

func TestTemplatePartials(t *testing.T) {
	testCases := []struct {
		name string
		data any
		want []string
	}{
		{
			name: "report_title",
			data: sampleReport(),
			want: []string{"# Bitcoin allocation simulation", "**100/0/0**", "from 2014 to 2016, 3 years"},
		},
		{
			name: "report_summary",
			data: sampleReport(),
			want: []string{"| Initial value | $1,000,000.00 |", "| Final value | $1,291,268.16 |", "| Gain | +$291,268.16 |", "| Total return | +29.13% |", "| CAGR | 8.89% |", "| Sharpe ratio | 1.27 |"},
		},
		{
			name: "report_years",
			data: sampleReport(),
			want: []string{"## Year by year", "| 2014 | +13.70% | $1,137,000.00 |", "| 2015 | +1.40% | $1,152,918.00 |", "| 2016 | +12.00% | $1,291,268.16 |"},
		},
		{
			name: "comparison",
			data: NewComparisonReport(sampleComparison(), "USD"),
			want: []string{"# Allocation comparison", "$10,000.00 invested over 5 years starting 2016.", "| Your portfolio | 60/30/10 |", "| Stocks | 100/0/0 |", "| Classic 60/40 | 60/40/0 |"},
		},
	}

	// --- Coverage Check ---
	partials, err := fs.Glob(templates, "*.md")
	if err != nil {
		t.Fatalf("cannot list templates: %v", err)
	}
	tested := make(map[string]struct{})
	for _, tc := range testCases {
		tested[tc.name+".md"] = struct{}{}
	}
	for _, partial := range partials {
		if partial == "report.md" {
			continue // main template, tested by TestRenderReport
		}
		if _, ok := tested[partial]; !ok {
			t.Errorf("untested template partial found: %s. Please add a test case to TestTemplatePartials.", partial)
		}
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			templateFile := tc.name + ".md"
			content, err := fs.ReadFile(templates, templateFile)
			if err != nil {
				t.Fatalf("failed to read template file %q: %v", templateFile, err)
			}
			tmpl, err := template.New(tc.name).Parse(string(content))
			if err != nil {
				t.Fatalf("failed to parse template %q: %v", templateFile, err)
			}
			var out bytes.Buffer
			if err := tmpl.Execute(&out, tc.data); err != nil {
				t.Fatalf("failed to execute template %q: %v", templateFile, err)
			}
			for _, want := range tc.want {
				if !strings.Contains(out.String(), want) {
					t.Errorf("template %q output:\n%s\nwant it to contain %q", tc.name, out.String(), want)
				}
			}
		})
	}
}

func TestRenderReport(t *testing.T) {
	md := RenderReport(sampleReport())
	for _, want := range []string{"# Bitcoin allocation simulation", "## Summary", "## Year by year", "$1,291,268.16"} {
		if !strings.Contains(md, want) {
			t.Errorf("RenderReport() =\n%s\nwant it to contain %q", md, want)
		}
	}
	if strings.Contains(md, "error") {
		t.Errorf("RenderReport() reported a template error:\n%s", md)
	}
}

func TestRenderReport_NoYears(t *testing.T) {
	s := allocation.NewScenario(1_000, allocation.NewMix(60, 30, 10), 0, 2014)
	md := RenderReport(NewReport(s, allocation.Simulate(returns.Historical(), s), "USD"))

	if !strings.Contains(md, "no simulated year") {
		t.Errorf("RenderReport() =\n%s\nwant it to mention no simulated year", md)
	}
	if strings.Contains(md, "Year by year") {
		t.Errorf("RenderReport() =\n%s\nwant no yearly table", md)
	}
	if !strings.Contains(md, "| Final value | $1,000.00 |") {
		t.Errorf("RenderReport() =\n%s\nwant the final value to be the initial value", md)
	}
}

func TestRenderReturns(t *testing.T) {
	md := RenderReturns(returns.Historical())
	for _, want := range []string{
		"# Historical annual returns 2014-2024",
		"| 2017 | 21.80% | 3.50% | 1318.00% |",
		"| 2022 | -18.10% | -13.00% | -64.00% |",
		"use the 2024 returns",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("RenderReturns() =\n%s\nwant it to contain %q", md, want)
		}
	}

	partial := returns.NewTable().Set(returns.Equities, 2020, 10)
	if md := RenderReturns(partial); !strings.Contains(md, "| 2020 | 10.00% | - | - |") {
		t.Errorf("RenderReturns(partial) =\n%s\nwant missing assets shown as -", md)
	}
}

func TestHTML(t *testing.T) {
	html, err := HTML(RenderReport(sampleReport()))
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	for _, want := range []string{"<h1>Bitcoin allocation simulation</h1>", "<table>", "$1,291,268.16</td>"} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML() =\n%s\nwant it to contain %q", html, want)
		}
	}
}

func TestFormat(t *testing.T) {
	testCases := []struct {
		got, want string
	}{
		{FormatCurrency(14_180_000, "USD"), "$14,180,000.00"},
		{FormatPercent(8.894383), "8.89%"},
		{FormatSignedPercent(-4.4), "-4.40%"},
		{FormatSignedPercent(0), "-"},
		{FormatRatio(1.266880), "1.27"},
		{strings.Join(YearLabels([]int{2014, 2015}), ","), "Start,2014,2015"},
	}
	for _, tc := range testCases {
		if tc.got != tc.want {
			t.Errorf("got %q, want %q", tc.got, tc.want)
		}
	}
}
