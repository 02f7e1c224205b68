package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/allocation/renderer"
	"github.com/etnz/allocation/returns"
	"github.com/google/subcommands"
)

type returnsCmd struct {
	export bool
}

func (*returnsCmd) Name() string     { return "returns" }
func (*returnsCmd) Synopsis() string { return "prints the annual returns used by simulations" }
func (*returnsCmd) Usage() string {
	return `alloc returns [-export]

  Prints the annual returns of equities, bonds and bitcoin. With -export, writes
  them in the JSONL format read by -returns-file.
`
}

func (c *returnsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.export, "export", false, "Write the table as JSONL to stdout")
}

func (c *returnsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, err := DecodeReturns()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading returns: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.export {
		if err := returns.Encode(os.Stdout, table); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RenderReturns(table))
	return subcommands.ExitSuccess
}
