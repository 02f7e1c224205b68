package cmd

import (
	"flag"
	"fmt"
	"log"

	"github.com/etnz/allocation"
	"github.com/etnz/allocation/returns"
)

// scenarioFlags are the calculator inputs shared by subcommands.
// Unset flags take the saved settings, then the defaults.
type scenarioFlags struct {
	initial   float64
	mix       string
	equities  float64
	bonds     float64
	bitcoin   float64
	years     int
	startYear int
	normalize bool
	save      bool
}

func (s *scenarioFlags) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&s.initial, "i", 0, "Initial portfolio value")
	f.StringVar(&s.mix, "mix", "", "Allocation as equities/bonds/bitcoin percents, e.g. 60/30/10")
	f.Float64Var(&s.equities, "e", 0, "Percent allocated to equities")
	f.Float64Var(&s.bonds, "b", 0, "Percent allocated to bonds")
	f.Float64Var(&s.bitcoin, "c", 0, "Percent allocated to bitcoin")
	f.IntVar(&s.years, "y", 0, "Number of simulated years")
	f.IntVar(&s.startYear, "s", 0, "First simulated year")
	f.BoolVar(&s.normalize, "normalize", false, "Fix the allocation to sum to 100% with bitcoin capped")
	f.BoolVar(&s.save, "save", false, "Remember these inputs in the settings file")
}

var assetFlags = map[string]returns.Asset{
	"e": returns.Equities,
	"b": returns.Bonds,
	"c": returns.Bitcoin,
}

// settings returns base overridden by the flags in set.
//
// -mix replaces the base mix. Then a single weight flag adjusts the other
// weights proportionally, and several weight flags replace their weights. The
// result must sum to 100% unless normalize is set.
func (s *scenarioFlags) settings(set map[string]bool, base allocation.Settings) (allocation.Settings, error) {
	if set["i"] {
		base.Initial = allocation.Ptr(s.initial)
	}
	if set["y"] {
		base.Years = allocation.Ptr(s.years)
	}
	if set["s"] {
		base.StartYear = allocation.Ptr(s.startYear)
	}

	var mix allocation.Mix
	if base.Mix != nil {
		mix = *base.Mix
	}
	if set["mix"] {
		m, err := allocation.ParseMix(s.mix)
		if err != nil {
			return base, err
		}
		mix = m
	}
	values := map[string]float64{"e": s.equities, "b": s.bonds, "c": s.bitcoin}
	var changed []string
	for _, name := range []string{"e", "b", "c"} {
		if set[name] {
			changed = append(changed, name)
		}
	}
	switch len(changed) {
	case 0:
	case 1:
		name := changed[0]
		mix = mix.Adjust(assetFlags[name], values[name], allocation.DefaultMaxBitcoin)
	default:
		for _, name := range changed {
			mix = mix.Set(assetFlags[name], values[name])
		}
	}
	if s.normalize {
		mix = allocation.Normalize(mix, allocation.DefaultMaxBitcoin)
	}
	if !mix.Valid() {
		return base, fmt.Errorf("invalid allocation %s: weights must be positive and sum to 100 (use -normalize to fix it)", mix)
	}
	base.Mix = &mix
	return base, nil
}

// Scenario returns the scenario described by the parsed flags f, and saves it
// if requested.
func (s *scenarioFlags) Scenario(f *flag.FlagSet) (allocation.Scenario, allocation.Settings, error) {
	base, err := DecodeSettings()
	if err != nil {
		return allocation.Scenario{}, base, err
	}
	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	settings, err := s.settings(set, base)
	if err != nil {
		return allocation.Scenario{}, settings, err
	}
	scenario := settings.Scenario()
	if err := scenario.Validate(); err != nil {
		return allocation.Scenario{}, settings, err
	}
	if s.save {
		if *currencyFlag != "" {
			settings.Currency = *currencyFlag
		}
		if err := settings.Save(*settingsFile); err != nil {
			return allocation.Scenario{}, settings, err
		}
		log.Printf("settings saved to %s", *settingsFile)
	}
	return scenario, settings, nil
}
