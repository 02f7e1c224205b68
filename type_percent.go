package allocation

import (
	"fmt"
	"math"
)

// Percent is a percentage, 12.5 means 12.5%.
type Percent float64

// Growth returns the relative change from start to end, 0 when start is 0.
func Growth(start, end float64) Percent {
	if start == 0 {
		return 0
	}
	return Percent((end - start) / start * 100)
}

// Equal reports whether p and q are equal to the hundredth of a basis point.
func (p Percent) Equal(q Percent) bool { return math.Abs(float64(p-q)) < 0.0001 }

// String formats p with two decimals, e.g. "12.50%".
func (p Percent) String() string { return fmt.Sprintf("%.2f%%", float64(p)) }

// SignedString is like String with an explicit sign. Values that round to
// zero are represented as "-".
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" || res == "-0.00%" {
		return "-"
	}
	return res
}
