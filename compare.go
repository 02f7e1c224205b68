package allocation

import (
	"encoding/json"

	"github.com/etnz/allocation/returns"
)

// Benchmark is a named reference mix to compare a portfolio against.
type Benchmark struct {
	Name string
	Mix  Mix
}

// DefaultBenchmarks are the mixes the calculator compares against.
var DefaultBenchmarks = []Benchmark{
	{Name: "Stocks", Mix: NewMix(100, 0, 0)},
	{Name: "Classic 60/40", Mix: NewMix(60, 40, 0)},
}

// PortfolioName is the name of the simulated mix in a Comparison.
const PortfolioName = "Your portfolio"

// Entry is one simulated mix in a Comparison.
type Entry struct {
	Name   string
	Mix    Mix
	Result *Result
}

func (e Entry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", e.Name)
	w.Append("mix", e.Mix)
	w.Append("result", e.Result)
	return w.MarshalJSON()
}

// Comparison holds the results of several mixes over the same period.
type Comparison struct {
	Scenario Scenario
	Entries  []Entry // the scenario's own mix first
}

// Compare simulates s and every benchmark over the same initial value and
// period.
func Compare(t *returns.Table, s Scenario, benchmarks ...Benchmark) *Comparison {
	c := &Comparison{Scenario: s}
	c.Entries = append(c.Entries, Entry{Name: PortfolioName, Mix: s.Mix, Result: Simulate(t, s)})
	for _, b := range benchmarks {
		bs := s
		bs.Mix = b.Mix
		c.Entries = append(c.Entries, Entry{Name: b.Name, Mix: b.Mix, Result: Simulate(t, bs)})
	}
	return c
}

// Names returns the entry names in order.
func (c *Comparison) Names() []string {
	names := make([]string, 0, len(c.Entries))
	for _, e := range c.Entries {
		names = append(names, e.Name)
	}
	return names
}

func (c *Comparison) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Scenario Scenario `json:"scenario"`
		Results  []Entry  `json:"results"`
	}{c.Scenario, c.Entries})
}
