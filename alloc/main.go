// Command alloc simulates allocations between equities, bonds and bitcoin.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/allocation/cmd"
	"github.com/etnz/allocation/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, "alloc")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// Shell completion, exits when the shell asked for it.
	completion(commander).Complete("alloc")

	if err := cmd.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(int(subcommands.ExitUsageError))
	}
	flag.Parse()
	cmd.Setup()

	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func registered(commander *subcommands.Commander, name string) (found bool) {
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}

// completion describes the command line for shell completion.
func completion(commander *subcommands.Commander) *complete.Command {
	scenario := map[string]complete.Predictor{
		"i":         predict.Something,
		"mix":       predict.Set{"60/30/10", "60/40/0", "100/0/0"},
		"e":         predict.Something,
		"b":         predict.Something,
		"c":         predict.Something,
		"y":         predict.Something,
		"s":         predict.Something,
		"normalize": predict.Nothing,
		"save":      predict.Nothing,
	}
	with := func(flags map[string]complete.Predictor) map[string]complete.Predictor {
		for k, v := range scenario {
			flags[k] = v
		}
		return flags
	}
	topics, _ := docs.GetAllTopics()

	sub := map[string]*complete.Command{
		"simulate": {Flags: with(map[string]complete.Predictor{
			"json": predict.Nothing,
			"q":    predict.Something,
		})},
		"compare": {Flags: with(map[string]complete.Predictor{
			"json":  predict.Nothing,
			"chart": predict.Files("*"),
		})},
		"returns": {Flags: map[string]complete.Predictor{
			"export": predict.Nothing,
		}},
		"publish": {Flags: with(map[string]complete.Predictor{
			"o":           predict.Dirs("*"),
			"frontmatter": predict.Files("*"),
		})},
		"serve": {Flags: map[string]complete.Predictor{
			"addr":    predict.Something,
			"cache":   predict.Something,
			"release": predict.Nothing,
		}},
		"assist": {},
		"topic":  {Args: predict.Set(topics)},
	}
	// help, flags and commands.
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if _, ok := sub[c.Name()]; !ok {
			sub[c.Name()] = &complete.Command{}
		}
	})

	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"returns-file":  predict.Files("*.jsonl"),
			"currency":      predict.Set{"USD", "EUR", "GBP", "CHF", "JPY"},
			"settings-file": predict.Files("*.json"),
			"verbose":       predict.Nothing,
			"v":             predict.Nothing,
		},
	}
}
