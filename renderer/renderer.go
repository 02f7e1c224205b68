// Package renderer turns simulation results into markdown reports, charts and
// HTML fragments for the calculator's website.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templatesFS embed.FS

// templates holds the markdown templates, at the root.
var templates = must(fs.Sub(templatesFS, "templates"))

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// RenderReport renders a single simulation Report to a markdown string.
func RenderReport(r *Report) string {
	partials := map[string]string{
		"report_title":   "report_title.md",
		"report_summary": "report_summary.md",
		"report_years":   "report_years.md",
	}
	return renderTemplate("report", "report.md", partials, r)
}

// RenderComparison renders a ComparisonReport to a markdown string.
func RenderComparison(c *ComparisonReport) string {
	return renderTemplate("comparison", "comparison.md", nil, c)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
