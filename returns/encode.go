package returns

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Returns tables are persisted as JSONL, one Row per line, so that they stay
// human-readable and git-friendly:
//
//	{"year":2014,"equities":13.7,"bonds":6,"bitcoin":-58}

// Decode reads a JSONL table from r. name is for error messages only.
func Decode(name string, r io.Reader) (*Table, error) {
	t := NewTable()
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var row Row
		if err := json.Unmarshal(line, &row); err != nil {
			return nil, fmt.Errorf("format error in %s:%d: %w", name, i, err)
		}
		if row.Year == 0 {
			return nil, fmt.Errorf("format error in %s:%d: missing year", name, i)
		}
		for _, a := range Assets {
			if ret, ok := row.Get(a); ok {
				t.Set(a, row.Year, ret)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", name, err)
	}
	return t, nil
}

// DecodeFile reads a JSONL table from filename.
func DecodeFile(filename string) (*Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q for reading: %w", filename, err)
	}
	defer f.Close()
	return Decode(filename, f)
}

// Encode writes t to w as JSONL, in chronological order.
func Encode(w io.Writer, t *Table) error {
	enc := json.NewEncoder(w)
	for row := range t.Rows() {
		if err := enc.Encode(row); err != nil {
			return fmt.Errorf("cannot encode year %d: %w", row.Year, err)
		}
	}
	return nil
}
