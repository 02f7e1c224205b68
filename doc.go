// Package allocation simulates how a portfolio split between equities, bonds
// and bitcoin would have grown over the historical annual returns of each
// asset class.
//
// The core functionalities include:
//   - Simulation: Simulate replays a returns.Table for a Scenario (initial
//     value, allocation Mix, start year and duration) and produces a Result:
//     the year-by-year trajectory with its CAGR, volatility, max drawdown and
//     Sharpe ratio. Simulate is pure and never fails; degenerate inputs yield
//     zero statistics.
//   - Comparison: Compare runs the same scenario for several mixes, typically
//     the user's mix against classic benchmarks.
//   - Input normalization: Mix.Adjust and Normalize keep a mix summing to 100%
//     with bitcoin capped at a policy maximum, the way the calculator's
//     sliders do.
//   - Presentation types: Money and Percent format figures for reports.
//
// This package serves as the foundational logic for the `alloc` command-line
// tool and the calculator's JSON API.
package allocation
