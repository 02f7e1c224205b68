package returns

import (
	"iter"
	"slices"
)

// Series stores annual percent returns, each associated with a calendar year.
// It ensures that years are unique and the series is always sorted.
type Series struct {
	years   []int
	returns []float64
}

// Len returns the number of years in the series.
func (s *Series) Len() int { return len(s.years) }

// Append adds a year to the series.
//
// An existing value for that year is overwritten.
func (s *Series) Append(year int, ret float64) *Series {
	i, found := slices.BinarySearch(s.years, year)
	if found {
		s.returns[i] = ret
		return s
	}
	s.years = slices.Insert(s.years, i, year)
	s.returns = slices.Insert(s.returns, i, ret)
	return s
}

// Get returns the return for year and true, or 0 and false.
func (s *Series) Get(year int) (float64, bool) {
	i, found := slices.BinarySearch(s.years, year)
	if !found {
		return 0, false
	}
	return s.returns[i], true
}

// Latest returns the latest year and its return.
// If the series is empty, it returns zero values.
func (s *Series) Latest() (year int, ret float64) {
	last := len(s.years) - 1
	if last < 0 {
		return 0, 0
	}
	return s.years[last], s.returns[last]
}

// First returns the earliest year and its return, or zero values.
func (s *Series) First() (year int, ret float64) {
	if len(s.years) == 0 {
		return 0, 0
	}
	return s.years[0], s.returns[0]
}

// Values returns an iterator over all year/return pairs, in chronological order.
func (s *Series) Values() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i, year := range s.years {
			if !yield(year, s.returns[i]) {
				return
			}
		}
	}
}

// LookupOrLatest returns the return for year. When the series has no entry
// for year, whether it is after the last tabulated year or before the first
// one, the latest tabulated return is used instead. An empty series yields 0.
func LookupOrLatest(s *Series, year int) float64 {
	if ret, ok := s.Get(year); ok {
		return ret
	}
	_, ret := s.Latest()
	return ret
}
