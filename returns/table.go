// Package returns holds the historical annual returns replayed by the
// portfolio simulator.
package returns

import (
	"iter"
	"slices"
)

// Table holds one Series of annual returns per asset class.
type Table struct {
	series [3]Series
}

// NewTable returns an empty table.
func NewTable() *Table { return &Table{} }

// Series returns the series of asset a.
func (t *Table) Series(a Asset) *Series { return &t.series[a] }

// Set records the return of asset a for year.
func (t *Table) Set(a Asset, year int, ret float64) *Table {
	t.series[a].Append(year, ret)
	return t
}

// Lookup returns the return of asset a for year, falling back to the
// latest tabulated year. See LookupOrLatest.
func (t *Table) Lookup(a Asset, year int) float64 { return LookupOrLatest(&t.series[a], year) }

// Row is a calendar year with the return of each asset class.
// A nil field means the asset has no return for that year.
type Row struct {
	Year     int      `json:"year"`
	Equities *float64 `json:"equities,omitempty"`
	Bonds    *float64 `json:"bonds,omitempty"`
	Bitcoin  *float64 `json:"bitcoin,omitempty"`
}

// Get returns the return of asset a in this row.
func (r Row) Get(a Asset) (float64, bool) {
	var p *float64
	switch a {
	case Equities:
		p = r.Equities
	case Bonds:
		p = r.Bonds
	case Bitcoin:
		p = r.Bitcoin
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

// Years returns all the years known by at least one asset, sorted.
func (t *Table) Years() []int {
	var years []int
	for i := range t.series {
		years = append(years, t.series[i].years...)
	}
	slices.Sort(years)
	return slices.Compact(years)
}

// Rows returns an iterator over the table, one Row per year in chronological order.
func (t *Table) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for _, year := range t.Years() {
			row := Row{Year: year}
			for _, a := range Assets {
				ret, ok := t.series[a].Get(year)
				if !ok {
					continue
				}
				switch a {
				case Equities:
					row.Equities = &ret
				case Bonds:
					row.Bonds = &ret
				case Bitcoin:
					row.Bitcoin = &ret
				}
			}
			if !yield(row) {
				return
			}
		}
	}
}

// Span returns the first and last years known by any asset, or zeros for an empty table.
func (t *Table) Span() (first, last int) {
	found := false
	for i := range t.series {
		s := &t.series[i]
		if s.Len() == 0 {
			continue
		}
		f, _ := s.First()
		l, _ := s.Latest()
		if !found {
			first, last, found = f, l, true
			continue
		}
		first, last = min(first, f), max(last, l)
	}
	return first, last
}
