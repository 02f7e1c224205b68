package agent

import (
	"github.com/etnz/allocation/returns"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
You are the front desk of an allocation calculator. Users ask how adding
bitcoin to a stocks and bonds portfolio would have performed historically.
Delegate every computation to the experts. Never invent figures. Answer in
concise markdown and remind the user that past returns do not predict
future returns.`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst returns an expert able to run simulations on table.
func NewAnalyst(table *returns.Table) *Expert {
	tools := []*Func{Simulate(table), Compare(table), Returns(table)}
	return &Expert{
		Name:        "Analyst",
		Description: "Runs historical simulations of an allocation between equities, bonds and bitcoin, and explains the resulting value, CAGR, volatility, max drawdown and Sharpe ratio.",
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(tools)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
You are a portfolio analyst. Use the Simulate and Compare tools to answer
questions about an allocation, and the Returns tool to quote the yearly
returns. Percentages in tool arguments and results are expressed in percent
(10 means 10%). Years missing from the table reuse the latest known year.`}}},
		},
		Library: NewLibrary(tools),
	}
}
