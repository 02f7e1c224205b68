package allocation

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Settings are the calculator inputs remembered between runs.
// A nil field is unset, so that a zero value can be remembered too.
type Settings struct {
	Initial   *float64 `json:"initialValue,omitempty"`
	Mix       *Mix     `json:"mix,omitempty"`
	Years     *int     `json:"years,omitempty"`
	StartYear *int     `json:"startYear,omitempty"`
	Currency  string   `json:"currency,omitempty"`
}

// DefaultSettings are used for any input neither given nor remembered.
var DefaultSettings = Settings{
	Initial:   Ptr(1_000_000.0),
	Mix:       &Mix{Equities: 60, Bonds: 30, Bitcoin: 10},
	Years:     Ptr(10),
	StartYear: Ptr(2014),
	Currency:  "USD",
}

// Ptr returns a pointer to a copy of v, to fill Settings.
func Ptr[T any](v T) *T { return &v }

// LoadSettings reads settings from filename.
// A missing file yields zero Settings and no error.
func LoadSettings(filename string) (Settings, error) {
	var s Settings
	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("cannot read settings %q: %w", filename, err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("format error in settings %q: %w", filename, err)
	}
	return s, nil
}

// Save writes s to filename.
func (s Settings) Save(filename string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("cannot write settings %q: %w", filename, err)
	}
	return nil
}

// Merge returns s where every unset field is taken from d.
func (s Settings) Merge(d Settings) Settings {
	s.Initial = cmp.Or(s.Initial, d.Initial)
	s.Mix = cmp.Or(s.Mix, d.Mix)
	s.Years = cmp.Or(s.Years, d.Years)
	s.StartYear = cmp.Or(s.StartYear, d.StartYear)
	s.Currency = cmp.Or(s.Currency, d.Currency)
	return s
}

// Scenario returns the scenario described by s. Unset fields are zero.
func (s Settings) Scenario() Scenario {
	return NewScenario(value(s.Initial), value(s.Mix), value(s.Years), value(s.StartYear))
}

func value[T any](p *T) T {
	var v T
	if p != nil {
		v = *p
	}
	return v
}
