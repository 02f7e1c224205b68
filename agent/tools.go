package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/etnz/allocation"
	"github.com/etnz/allocation/renderer"
	"github.com/etnz/allocation/returns"
	"google.golang.org/genai"
)

// Func is a Function implemented by a go function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, args map[string]any) (any, error)
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }

// Call runs the go function, errors are reported in the response.
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	out, err := f.Func(ctx, args)
	if err != nil {
		return errorResponse(id, f.Decl.Name, err)
	}
	return &genai.FunctionResponse{
		ID:       id,
		Name:     f.Decl.Name,
		Response: map[string]any{"output": out},
	}
}

func number(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeNumber, Description: description}
}

func integer(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeInteger, Description: description}
}

var scenarioSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"initialValue": number("Initial portfolio value."),
		"equities":     number("Percent allocated to equities."),
		"bonds":        number("Percent allocated to bonds."),
		"bitcoin":      number("Percent allocated to bitcoin."),
		"years":        integer("Number of simulated years, at most 100."),
		"startYear":    integer("First simulated calendar year."),
	},
	Required: []string{"equities", "bonds", "bitcoin", "years", "startYear"},
}

// scenarioArgs reads a Scenario out of model arguments. Missing optional
// values come from allocation.DefaultSettings.
func scenarioArgs(args map[string]any) (allocation.Scenario, error) {
	s := allocation.DefaultSettings.Scenario()
	get := func(key string, dst *float64) error {
		v, ok := args[key]
		if !ok {
			return nil
		}
		switch x := v.(type) {
		case float64:
			*dst = x
		case int:
			*dst = float64(x)
		case int64:
			*dst = float64(x)
		default:
			return fmt.Errorf("invalid %s type %T, expected a number", key, v)
		}
		return nil
	}
	years, start := float64(s.Years), float64(s.StartYear)
	for key, dst := range map[string]*float64{
		"initialValue": &s.Initial,
		"equities":     &s.Mix.Equities,
		"bonds":        &s.Mix.Bonds,
		"bitcoin":      &s.Mix.Bitcoin,
		"years":        &years,
		"startYear":    &start,
	} {
		if err := get(key, dst); err != nil {
			return s, err
		}
	}
	var err error
	if s.Years, err = toInt("years", years); err != nil {
		return s, err
	}
	if s.StartYear, err = toInt("startYear", start); err != nil {
		return s, err
	}
	return s, s.Validate()
}

// toInt converts a model number to an int within the int32 range.
func toInt(key string, v float64) (int, error) {
	if math.IsNaN(v) || math.Abs(v) > math.MaxInt32 {
		return 0, fmt.Errorf("invalid %s %g: out of range", key, v)
	}
	return int(v), nil
}

func jsonOutput(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Simulate returns the tool simulating a scenario on table.
func Simulate(table *returns.Table) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Simulate",
			Description: "Replays historical annual returns for an allocation and returns the yearly values, final value, total return, CAGR, volatility, max drawdown and Sharpe ratio as JSON.",
			Parameters:  scenarioSchema,
			Response:    &genai.Schema{Type: genai.TypeString, Description: "Simulation result as JSON."},
		},
		Func: func(ctx context.Context, args map[string]any) (any, error) {
			s, err := scenarioArgs(args)
			if err != nil {
				return nil, err
			}
			return jsonOutput(allocation.Simulate(table, s))
		},
	}
}

// Compare returns the tool comparing a scenario with the default benchmarks.
func Compare(table *returns.Table) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Compare",
			Description: "Simulates an allocation next to a 100% stocks and a classic 60/40 portfolio over the same period and returns all results as JSON.",
			Parameters:  scenarioSchema,
			Response:    &genai.Schema{Type: genai.TypeString, Description: "Comparison as JSON."},
		},
		Func: func(ctx context.Context, args map[string]any) (any, error) {
			s, err := scenarioArgs(args)
			if err != nil {
				return nil, err
			}
			return jsonOutput(allocation.Compare(table, s, allocation.DefaultBenchmarks...))
		},
	}
}

// Returns returns the tool listing the annual returns of table.
func Returns(table *returns.Table) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Returns",
			Description: "Returns the annual returns in percent of equities, bonds and bitcoin used by the simulations, as a markdown table.",
			Response:    &genai.Schema{Type: genai.TypeString, Description: "Markdown table."},
		},
		Func: func(ctx context.Context, args map[string]any) (any, error) {
			return renderer.RenderReturns(table), nil
		},
	}
}
