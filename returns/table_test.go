package returns

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHistorical(t *testing.T) {
	h := Historical()

	first, last := h.Span()
	if first != 2014 || last != 2024 {
		t.Errorf("Historical().Span() = %d, %d want 2014, 2024", first, last)
	}

	testCases := []struct {
		asset Asset
		year  int
		want  float64
	}{
		{Equities, 2014, 13.7},
		{Equities, 2015, 1.4},
		{Equities, 2016, 12.0},
		{Bitcoin, 2017, 1318},
		{Equities, 2030, 25.0},
		{Bonds, 2030, 1.3},
		{Bitcoin, 2030, 121},
	}
	for _, tc := range testCases {
		if got := h.Lookup(tc.asset, tc.year); got != tc.want {
			t.Errorf("Historical().Lookup(%v, %d) = %v, want %v", tc.asset, tc.year, got, tc.want)
		}
	}
}

func TestSpan(t *testing.T) {
	testCases := []struct {
		name        string
		table       *Table
		first, last int
	}{
		{"empty", NewTable(), 0, 0},
		{"single", NewTable().Set(Bonds, 2020, 1), 2020, 2020},
		{"bitcoin starts later", NewTable().Set(Equities, 2010, 1).Set(Equities, 2011, 2).Set(Bitcoin, 2015, 3), 2010, 2015},
		{"equities stop earlier", NewTable().Set(Equities, 2012, 1).Set(Bonds, 2013, 1).Set(Bonds, 2019, 1), 2012, 2019},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			first, last := tc.table.Span()
			if first != tc.first || last != tc.last {
				t.Errorf("Span() = %d, %d, want %d, %d", first, last, tc.first, tc.last)
			}
		})
	}
}

func TestParseAsset(t *testing.T) {
	for in, want := range map[string]Asset{
		"equities": Equities,
		"Stocks":   Equities,
		" bonds ":  Bonds,
		"BTC":      Bitcoin,
		"bitcoin":  Bitcoin,
	} {
		got, err := ParseAsset(in)
		if err != nil {
			t.Errorf("ParseAsset(%q) unexpected error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseAsset(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseAsset("gold"); err == nil {
		t.Error("ParseAsset(gold) expected an error, got nil")
	}
}

func TestEncodeDecode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Historical()); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 11 {
		t.Fatalf("Encode() wrote %d lines, want 11", len(lines))
	}
	if want := `{"year":2014,"equities":13.7,"bonds":6,"bitcoin":-58}`; lines[0] != want {
		t.Errorf("Encode() first line = %s, want %s", lines[0], want)
	}

	got, err := Decode("historical", &buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if diff := cmp.Diff(collect(Historical()), collect(got)); diff != "" {
		t.Errorf("Decode(Encode()) mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_PartialRowsAndBlankLines(t *testing.T) {
	src := `{"year":2020,"equities":10}

{"year":2021,"equities":5,"bitcoin":60}
`
	got, err := Decode("partial", strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Series(Bitcoin).Len() != 1 {
		t.Errorf("bitcoin series has %d years, want 1", got.Series(Bitcoin).Len())
	}
	if got.Series(Bonds).Len() != 0 {
		t.Errorf("bonds series has %d years, want 0", got.Series(Bonds).Len())
	}
	// 2020 falls back on the latest bitcoin return.
	if r := got.Lookup(Bitcoin, 2020); r != 60 {
		t.Errorf("Lookup(Bitcoin, 2020) = %v, want 60", r)
	}
}

func TestDecode_Errors(t *testing.T) {
	for name, src := range map[string]string{
		"malformed":    `{"year":2020,`,
		"missing year": `{"equities":10}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Decode("bad", strings.NewReader(src))
			if err == nil {
				t.Fatal("Decode() expected an error, got nil")
			}
			if !strings.Contains(err.Error(), "bad:1") {
				t.Errorf("Decode() error = %q, want it to locate bad:1", err)
			}
		})
	}
}

// collect flattens a table for comparison.
func collect(t *Table) map[string]map[int]float64 {
	m := make(map[string]map[int]float64)
	for _, a := range Assets {
		m[a.String()] = make(map[int]float64)
		for y, r := range t.Series(a).Values() {
			m[a.String()][y] = r
		}
	}
	return m
}
