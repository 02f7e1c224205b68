package allocation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/etnz/allocation/returns"
)

// DefaultMaxBitcoin is the policy maximum for the bitcoin share of a mix, in percent.
const DefaultMaxBitcoin = 50

// sumTolerance is how far from 100 a mix may sum and still be valid.
const sumTolerance = 0.1

// Mix is an allocation between the asset classes, in percent.
//
// A Mix should sum to 100, but nothing in the simulation depends on it: the
// weights are applied as they are.
type Mix struct {
	Equities float64 `json:"equities"`
	Bonds    float64 `json:"bonds"`
	Bitcoin  float64 `json:"bitcoin"`
}

// NewMix returns a mix of equities, bonds and bitcoin percents.
func NewMix(equities, bonds, bitcoin float64) Mix {
	return Mix{Equities: equities, Bonds: bonds, Bitcoin: bitcoin}
}

// Weight returns the percent allocated to asset a.
func (m Mix) Weight(a returns.Asset) float64 {
	switch a {
	case returns.Equities:
		return m.Equities
	case returns.Bonds:
		return m.Bonds
	case returns.Bitcoin:
		return m.Bitcoin
	}
	return 0
}

// Set returns a copy of m with asset a set to pct.
func (m Mix) Set(a returns.Asset, pct float64) Mix {
	switch a {
	case returns.Equities:
		m.Equities = pct
	case returns.Bonds:
		m.Bonds = pct
	case returns.Bitcoin:
		m.Bitcoin = pct
	}
	return m
}

// Sum returns the total of all weights.
func (m Mix) Sum() float64 { return m.Equities + m.Bonds + m.Bitcoin }

// Valid reports whether the mix sums to 100 within 0.1 and has no negative weight.
func (m Mix) Valid() bool {
	if m.Equities < 0 || m.Bonds < 0 || m.Bitcoin < 0 {
		return false
	}
	return math.Abs(m.Sum()-100) <= sumTolerance
}

// String formats the mix as "equities/bonds/bitcoin", e.g. "60/30/10".
func (m Mix) String() string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return f(m.Equities) + "/" + f(m.Bonds) + "/" + f(m.Bitcoin)
}

// ParseMix parses a mix formatted like String.
func ParseMix(s string) (Mix, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return Mix{}, fmt.Errorf("invalid mix %q, want equities/bonds/bitcoin", s)
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Mix{}, fmt.Errorf("invalid mix %q: %w", s, err)
		}
		v[i] = f
	}
	return NewMix(v[0], v[1], v[2]), nil
}

// Adjust returns a copy of m where asset a is set to pct and the two other
// assets absorb the difference so that the mix sums to 100.
//
// pct is clamped to [0, 100], and to [0, maxBitcoin] for bitcoin. The
// remainder is split between the other assets in proportion to their current
// weights, or equally when both are zero. Bitcoin never ends above maxBitcoin.
func (m Mix) Adjust(a returns.Asset, pct, maxBitcoin float64) Mix {
	maxBitcoin = clamp(maxBitcoin, 0, 100)
	pct = clamp(pct, 0, 100)
	if a == returns.Bitcoin {
		pct = min(pct, maxBitcoin)
	}

	var others []returns.Asset
	for _, o := range returns.Assets {
		if o != a {
			others = append(others, o)
		}
	}
	o1, o2 := others[0], others[1]
	w1, w2 := max(m.Weight(o1), 0), max(m.Weight(o2), 0)

	remainder := 100 - pct
	var n1 float64
	if w1+w2 > 0 {
		n1 = remainder * w1 / (w1 + w2)
	} else {
		n1 = remainder / 2
	}
	n2 := remainder - n1

	res := m.Set(a, pct).Set(o1, n1).Set(o2, n2)
	if excess := res.Bitcoin - maxBitcoin; excess > 0 {
		// the only way to get here is when bitcoin is one of the others.
		other := o1
		if other == returns.Bitcoin {
			other = o2
		}
		res = res.Set(returns.Bitcoin, maxBitcoin).Set(other, res.Weight(other)+excess)
	}
	return res
}

// Normalize returns a valid mix close to m: negative weights become zero,
// bitcoin is capped at maxBitcoin, and equities and bonds are scaled so the
// mix sums to 100. When both are zero, equities take the remainder.
func Normalize(m Mix, maxBitcoin float64) Mix {
	e, b, c := max(m.Equities, 0), max(m.Bonds, 0), max(m.Bitcoin, 0)
	c = min(c, clamp(maxBitcoin, 0, 100))
	rest := 100 - c
	if e+b == 0 {
		return NewMix(rest, 0, c)
	}
	ne := rest * e / (e + b)
	return NewMix(ne, rest-ne, c)
}

func clamp(v, lo, hi float64) float64 { return max(lo, min(v, hi)) }
