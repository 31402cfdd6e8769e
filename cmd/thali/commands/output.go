package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spektr-org/thali/menu"
)

// ============================================================================
// JSON OUTPUT
// ============================================================================

func writeJSON(w io.Writer, v interface{}, format string) error {
	var out []byte
	var err error

	if format == "pretty" {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// ============================================================================
// TEXT OUTPUT
// ============================================================================

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// ============================================================================
// CSV OUTPUT — Sheets-ready rows, readable back by the loader
// ============================================================================

var recordColumns = []string{menu.KeyName, menu.KeyItems, menu.KeyPrice, menu.KeyIsVeg}

// writeRecordsCSV writes one row per record. Items are joined with ";" so
// the file loads back as the same menu. Absent fields are empty cells.
func writeRecordsCSV(w io.Writer, records []any) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(recordColumns); err != nil {
		return err
	}

	for _, r := range records {
		row := make([]string, len(recordColumns))
		for i, key := range recordColumns {
			v, ok := menu.Field(r, key)
			if !ok {
				continue
			}
			if key == menu.KeyItems {
				row[i] = itemsCell(v)
			} else {
				row[i] = menu.ValueText(v)
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func itemsCell(v any) string {
	items, ok := v.([]any)
	if !ok {
		return menu.ValueText(v)
	}
	parts := make([]string, len(items))
	for i, item := range items {
		if item != nil {
			parts[i] = menu.ValueText(item)
		}
	}
	return strings.Join(parts, ";")
}

func writeStatsCSV(w io.Writer, s *menu.Stats) error {
	cw := csv.NewWriter(w)
	if s == nil {
		cw.Write([]string{"Result", "No data"})
		cw.Flush()
		return cw.Error()
	}

	names := make([]string, len(s.Names))
	for i, n := range s.Names {
		names[i] = menu.ValueText(n)
	}

	rows := [][]string{
		{"Metric", "Value"},
		{"totalThalis", strconv.Itoa(s.TotalThalis)},
		{"vegCount", strconv.Itoa(s.VegCount)},
		{"nonVegCount", strconv.Itoa(s.NonVegCount)},
		{"avgPrice", s.AvgPrice},
		{"cheapest", menu.ValueText(s.Cheapest)},
		{"costliest", menu.ValueText(s.Costliest)},
		{"names", strings.Join(names, ";")},
	}
	return cw.WriteAll(rows)
}

func writeColumnCSV(w io.Writer, header string, values []string) error {
	cw := csv.NewWriter(w)
	rows := make([][]string, 0, len(values)+1)
	rows = append(rows, []string{header})
	for _, v := range values {
		rows = append(rows, []string{v})
	}
	return cw.WriteAll(rows)
}
