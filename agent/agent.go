// Package agent implements an AI assistant that answers questions about
// allocations by running simulations on the user's behalf.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/allocation/returns"
	"google.golang.org/genai"
)

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w           io.Writer
	r           *bufio.Reader
	table       *returns.Table
	Facilitator *Expert
	Experts     []*Expert
}

// New creates a new Agent answering from table.
//
// It takes an io.Writer for the agent's output (e.g., os.Stdout), an
// io.Reader for user input (e.g., os.Stdin). The facilitator consults an
// Analyst of table, then any other experts.
func New(w io.Writer, r io.Reader, table *returns.Table, experts ...*Expert) *Agent {
	experts = append([]*Expert{NewAnalyst(table)}, experts...)
	return &Agent{
		w:           w,
		r:           bufio.NewReader(r),
		table:       table,
		Experts:     experts,
		Facilitator: newFacilitator(experts...),
	}
}

// Start creates the Gemini chats of every expert and of the facilitator.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range a.Experts {
		if err := e.Start(ctx, client); err != nil {
			return err
		}
	}
	return a.Facilitator.Start(ctx, client)
}

const prompt = "assist> "

// Run starts the interactive session. prompts are answered first, as if the
// user typed them.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Facilitator.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprint(a.w, welcome(a.table))

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		content, err := a.Facilitator.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, content.Parts[0].Text)
	}
}

// welcome introduces the session with the years covered by table.
func welcome(table *returns.Table) string {
	var b strings.Builder
	b.WriteString("Welcome to alloc assist.\n")
	first, last := table.Span()
	if first == 0 && last == 0 {
		b.WriteString("The returns table is empty: every allocation keeps its initial value.\n")
	} else {
		fmt.Fprintf(&b, "Returns are known from %d to %d, later years repeat %d.\n", first, last, last)
	}
	b.WriteString("Ask about any allocation, type 'bye' to exit.\n")
	return b.String()
}
