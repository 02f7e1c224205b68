package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/allocation/returns"
)

// RenderReturns renders the annual returns table to a markdown string.
// Years missing for an asset are shown as "-".
func RenderReturns(t *returns.Table) string {
	var b strings.Builder
	first, last := t.Span()
	fmt.Fprintf(&b, "# Historical annual returns %d-%d\n\n", first, last)
	fmt.Fprintln(&b, "| Year | Equities | Bonds | Bitcoin |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for row := range t.Rows() {
		fmt.Fprintf(&b, "| %d |", row.Year)
		for _, a := range returns.Assets {
			if ret, ok := row.Get(a); ok {
				fmt.Fprintf(&b, " %s |", FormatPercent(ret))
			} else {
				fmt.Fprint(&b, " - |")
			}
		}
		fmt.Fprintln(&b)
	}
	fmt.Fprintf(&b, "\nYears outside of the table use the %d returns.\n", last)
	return b.String()
}
