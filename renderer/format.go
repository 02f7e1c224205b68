package renderer

import (
	"fmt"
	"strconv"

	"github.com/etnz/allocation"
)

// FormatCurrency formats v in currency, e.g. "$1,137,000.00".
func FormatCurrency(v float64, currency string) string { return allocation.M(v, currency).String() }

// FormatPercent formats a percent figure, e.g. "12.34%".
func FormatPercent(p float64) string { return allocation.Percent(p).String() }

// FormatSignedPercent formats a percent figure with its sign, or "-" when it rounds to zero.
func FormatSignedPercent(p float64) string { return allocation.Percent(p).SignedString() }

// FormatRatio formats a ratio with two decimals.
func FormatRatio(r float64) string { return fmt.Sprintf("%.2f", r) }

// YearLabels returns the x axis labels of a chart: "Start" then every year.
func YearLabels(years []int) []string {
	labels := make([]string, 0, len(years)+1)
	labels = append(labels, "Start")
	for _, y := range years {
		labels = append(labels, strconv.Itoa(y))
	}
	return labels
}
