package cmd

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/allocation"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func mix(e, b, c float64) *allocation.Mix {
	m := allocation.NewMix(e, b, c)
	return &m
}

// usdSettings returns complete settings in USD.
func usdSettings(initial float64, m *allocation.Mix, years, start int) allocation.Settings {
	return allocation.Settings{
		Initial:   allocation.Ptr(initial),
		Mix:       m,
		Years:     allocation.Ptr(years),
		StartYear: allocation.Ptr(start),
		Currency:  "USD",
	}
}

func TestScenarioFlagsSettings(t *testing.T) {
	base := allocation.DefaultSettings

	tests := []struct {
		name    string
		args    []string
		want    allocation.Settings
		wantErr string
	}{
		{
			name: "defaults",
			want: base,
		},
		{
			name: "period",
			args: []string{"-i", "100", "-y", "3", "-s", "2020"},
			want: usdSettings(100, mix(60, 30, 10), 3, 2020),
		},
		{
			name: "single weight adjusts the others",
			args: []string{"-c", "25"},
			want: usdSettings(1e6, mix(50, 25, 25), 10, 2014),
		},
		{
			name: "bitcoin capped",
			args: []string{"-c", "80"},
			want: usdSettings(1e6, mix(100.0/3, 50.0/3, 50), 10, 2014),
		},
		{
			name: "full mix",
			args: []string{"-e", "70", "-b", "20", "-c", "10"},
			want: usdSettings(1e6, mix(70, 20, 10), 10, 2014),
		},
		{
			name: "mix",
			args: []string{"-mix", "80/20/0"},
			want: usdSettings(1e6, mix(80, 20, 0), 10, 2014),
		},
		{
			name: "mix then a single weight",
			args: []string{"-mix", "80/20/0", "-c", "10"},
			want: usdSettings(1e6, mix(72, 18, 10), 10, 2014),
		},
		{
			name:    "mix not parsed",
			args:    []string{"-mix", "80-20-0"},
			wantErr: `invalid mix "80-20-0"`,
		},
		{
			name:    "mix not summing to 100",
			args:    []string{"-mix", "80/30/0"},
			wantErr: "invalid allocation 80/30/0",
		},
		{
			name: "zero years and initial value",
			args: []string{"-i", "0", "-y", "0"},
			want: usdSettings(0, mix(60, 30, 10), 0, 2014),
		},
		{
			name:    "full mix not summing to 100",
			args:    []string{"-e", "70", "-b", "20", "-c", "20"},
			wantErr: "invalid allocation 70/20/20",
		},
		{
			name: "normalized",
			args: []string{"-e", "70", "-b", "30", "-c", "100", "-normalize"},
			want: usdSettings(1e6, mix(35, 15, 50), 10, 2014),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var s scenarioFlags
			f := flag.NewFlagSet("test", flag.ContinueOnError)
			s.SetFlags(f)
			if err := f.Parse(tc.args); err != nil {
				t.Fatal(err)
			}
			set := make(map[string]bool)
			f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

			got, err := s.settings(set, base)
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("settings() error = %v, want %q", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("settings() error = %v", err)
			}
			if diff := cmp.Diff(tc.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("settings() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScenarioSave(t *testing.T) {
	old := *settingsFile
	defer func() { *settingsFile = old }()
	*settingsFile = filepath.Join(t.TempDir(), "settings.json")

	var s scenarioFlags
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	s.SetFlags(f)
	if err := f.Parse([]string{"-c", "5", "-y", "4", "-save"}); err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.Scenario(f); err != nil {
		t.Fatalf("Scenario() error = %v", err)
	}

	// a second run without flags gets the saved inputs.
	var again scenarioFlags
	f = flag.NewFlagSet("test", flag.ContinueOnError)
	again.SetFlags(f)
	if err := f.Parse(nil); err != nil {
		t.Fatal(err)
	}
	got, _, err := again.Scenario(f)
	if err != nil {
		t.Fatalf("Scenario() error = %v", err)
	}
	want := allocation.NewScenario(1e6, allocation.NewMix(95.0*2/3, 95.0/3, 5), 4, 2014)
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("saved Scenario() mismatch (-want +got):\n%s", diff)
	}
}

func TestScenarioSaveZero(t *testing.T) {
	old := *settingsFile
	defer func() { *settingsFile = old }()
	*settingsFile = filepath.Join(t.TempDir(), "settings.json")

	for _, args := range [][]string{{"-i", "0", "-y", "0", "-save"}, nil} {
		var s scenarioFlags
		f := flag.NewFlagSet("test", flag.ContinueOnError)
		s.SetFlags(f)
		if err := f.Parse(args); err != nil {
			t.Fatal(err)
		}
		got, _, err := s.Scenario(f)
		if err != nil {
			t.Fatalf("Scenario(%q) error = %v", args, err)
		}
		want := allocation.NewScenario(0, allocation.NewMix(60, 30, 10), 0, 2014)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Scenario(%q) mismatch (-want +got):\n%s", args, diff)
		}
	}
}

func TestScenarioTooManyYears(t *testing.T) {
	old := *settingsFile
	defer func() { *settingsFile = old }()
	*settingsFile = filepath.Join(t.TempDir(), "settings.json")

	var s scenarioFlags
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	s.SetFlags(f)
	if err := f.Parse([]string{"-y", "1000000000", "-save"}); err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.Scenario(f); err == nil || !strings.Contains(err.Error(), "invalid years") {
		t.Fatalf("Scenario() error = %v, want invalid years", err)
	}
	if _, err := os.Stat(*settingsFile); !os.IsNotExist(err) {
		t.Errorf("invalid settings were saved (stat error %v)", err)
	}
}
