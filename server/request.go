package server

import (
	"fmt"

	"github.com/etnz/allocation"
)

// ScenarioRequest is the body of simulate and compare requests, and the
// query of chart requests. Absent fields take the calculator defaults.
type ScenarioRequest struct {
	Initial   *float64 `json:"initialValue" form:"initialValue"`
	Equities  *float64 `json:"equities" form:"equities"`
	Bonds     *float64 `json:"bonds" form:"bonds"`
	Bitcoin   *float64 `json:"bitcoin" form:"bitcoin"`
	Years     *int     `json:"years" form:"years"`
	StartYear *int     `json:"startYear" form:"startYear"`
	Normalize bool     `json:"normalize" form:"normalize"`
}

// Scenario validates r and returns the scenario it describes.
func (r ScenarioRequest) Scenario() (allocation.Scenario, error) {
	s := allocation.DefaultSettings.Scenario()
	set(&s.Initial, r.Initial)
	set(&s.Mix.Equities, r.Equities)
	set(&s.Mix.Bonds, r.Bonds)
	set(&s.Mix.Bitcoin, r.Bitcoin)
	set(&s.Years, r.Years)
	set(&s.StartYear, r.StartYear)

	if r.Normalize {
		s.Mix = allocation.Normalize(s.Mix, allocation.DefaultMaxBitcoin)
	}
	return s, s.Validate()
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// cacheKey identifies a response to a scenario.
func cacheKey(kind string, s allocation.Scenario) string {
	return fmt.Sprintf("%s|%g|%s|%d|%d", kind, s.Initial, s.Mix, s.Years, s.StartYear)
}
