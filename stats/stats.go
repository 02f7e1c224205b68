// Package stats implements the risk and return statistics used to describe a
// portfolio trajectory.
//
// All functions work on percent figures (12.5 means 12.5%) and plain values,
// and return 0 on empty input rather than failing.
package stats

import "math"

// Mean returns the arithmetic mean of values, or 0 if values is empty.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StandardDeviation returns the population standard deviation of values
// (divided by N, not N-1), or 0 if values is empty.
//
// Deviations are taken from the first value so that a constant sequence
// yields exactly 0.
func StandardDeviation(values []float64) float64 {
	n := float64(len(values))
	if n == 0 {
		return 0
	}
	var sum, sumSq float64
	for _, v := range values {
		d := v - values[0]
		sum += d
		sumSq += d * d
	}
	variance := (sumSq - sum*sum/n) / n
	if variance <= 0 {
		return 0
	}
	return math.Sqrt(variance)
}

// MaxDrawdown returns the largest decline, in percent, from a running peak to
// a later value, scanning values left to right.
//
// It returns 0 for fewer than two values. A running peak of zero contributes
// no drawdown.
func MaxDrawdown(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	peak := values[0]
	var maxDD float64
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
		if peak == 0 {
			continue
		}
		if dd := (peak - v) / peak * 100; dd > maxDD {
			maxDD = dd
		}
	}
	return maxDD
}

// CAGR returns the compound annual growth rate, in percent, that turns start
// into end over years.
//
// The caller must ensure start > 0 and years > 0: CAGR does not guard
// against division by zero or a fractional power of a negative base. Use
// CAGROrZero when inputs are not known to be valid.
func CAGR(start, end float64, years int) float64 {
	return (math.Pow(end/start, 1/float64(years)) - 1) * 100
}

// CAGROrZero is like CAGR but returns 0 when start <= 0, years <= 0, or when
// the growth rate is not a finite number (a negative end value over several
// years).
func CAGROrZero(start, end float64, years int) float64 {
	if start <= 0 || years <= 0 {
		return 0
	}
	c := CAGR(start, end, years)
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return 0
	}
	return c
}

// SharpeRatio returns the mean of returns minus riskFree, divided by the
// population standard deviation of returns. It returns 0 when the standard
// deviation is 0.
func SharpeRatio(returns []float64, riskFree float64) float64 {
	sd := StandardDeviation(returns)
	if sd == 0 {
		return 0
	}
	return (Mean(returns) - riskFree) / sd
}
