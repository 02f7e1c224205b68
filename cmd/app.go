// Package cmd implements the alloc command line.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/etnz/allocation"
	"github.com/etnz/allocation/returns"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&simulateCmd{}, "simulation")
	c.Register(&compareCmd{}, "simulation")
	c.Register(&returnsCmd{}, "simulation")

	c.Register(&publishCmd{}, "website")
	c.Register(&serveCmd{}, "website")

	c.Register(&AssistCmd{}, "")
	c.Register(&topicCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var returnsFile = flag.String("returns-file", "", "Path to a returns table (JSONL format), the built-in historical table by default")
var currencyFlag = flag.String("currency", "", "Currency used to display values (default \"USD\" or the saved setting)")
var settingsFile = flag.String("settings-file", ".alloc.json", "Path to the file remembering the calculator inputs")

// Verbose enables logging.
var Verbose = flag.Bool("verbose", false, "Print progress logs to stderr")

func init() {
	flag.BoolVar(Verbose, "v", false, "Shorthand for -verbose")
}

// envFlags maps environment variables to the global flag they preset.
var envFlags = []struct{ env, flag string }{
	{EnvReturnsFile, "returns-file"},
	{EnvCurrency, "currency"},
	{EnvSettingsFile, "settings-file"},
	{EnvVerbose, "verbose"},
}

// LoadEnv loads a .env file if any, and presets global flags from the
// environment. It must be called before flag.Parse so that command line flags
// still win.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("cannot load .env: %w", err)
	}
	for _, e := range envFlags {
		v, ok := os.LookupEnv(e.env)
		if !ok || v == "" {
			continue
		}
		if err := flag.Set(e.flag, v); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", e.env, v, err)
		}
	}
	return nil
}

// Setup applies the global flags once parsed.
func Setup() {
	if !*Verbose {
		log.SetOutput(io.Discard)
	}
}

// DecodeReturns returns the table from the returns file, or the historical
// one when no file is set.
func DecodeReturns() (*returns.Table, error) {
	if *returnsFile == "" {
		return returns.Historical(), nil
	}
	log.Printf("loading returns from %s", *returnsFile)
	return returns.DecodeFile(*returnsFile)
}

// DecodeSettings returns the saved settings completed with the defaults.
func DecodeSettings() (allocation.Settings, error) {
	s, err := allocation.LoadSettings(*settingsFile)
	if err != nil {
		return s, err
	}
	return s.Merge(allocation.DefaultSettings), nil
}

// Currency returns the currency to display values in.
func Currency(s allocation.Settings) string {
	if *currencyFlag != "" {
		return *currencyFlag
	}
	if s.Currency != "" {
		return s.Currency
	}
	return allocation.DefaultSettings.Currency
}
