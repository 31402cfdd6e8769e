package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spektr-org/thali/menu"
)

// ============================================================================
// CSV HELPER — Parses CSV menu rows into records
// ============================================================================
// Header row names the columns (name, items, price, isVeg; case-insensitive).
// Items are split on the item separator. Price and isVeg become number and
// bool when they parse, and stay raw text otherwise. Empty price/isVeg cells
// leave the field out. Unknown columns are kept as text.
// ============================================================================

var knownColumns = map[string]string{
	"name":  menu.KeyName,
	"items": menu.KeyItems,
	"price": menu.KeyPrice,
	"isveg": menu.KeyIsVeg,
}

func decodeCSV(data []byte, itemSep string) ([]any, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	keys := make([]string, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if key, ok := knownColumns[strings.ToLower(h)]; ok {
			keys[i] = key
		} else {
			keys[i] = h
		}
	}

	records := []any{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}

		rec := make(map[string]any, len(keys))
		for i, val := range row {
			if i >= len(keys) {
				break
			}
			setCSVField(rec, keys[i], val, itemSep)
		}
		records = append(records, rec)
	}

	return records, nil
}

func setCSVField(rec map[string]any, key, val, itemSep string) {
	switch key {
	case menu.KeyItems:
		items := []any{}
		if strings.TrimSpace(val) != "" {
			for _, item := range strings.Split(val, itemSep) {
				items = append(items, strings.TrimSpace(item))
			}
		}
		rec[key] = items
	case menu.KeyPrice:
		val = strings.TrimSpace(val)
		if val == "" {
			return
		}
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			rec[key] = f
		} else {
			rec[key] = val
		}
	case menu.KeyIsVeg:
		val = strings.TrimSpace(val)
		if val == "" {
			return
		}
		if b, err := strconv.ParseBool(val); err == nil {
			rec[key] = b
		} else {
			rec[key] = val
		}
	default:
		rec[key] = val
	}
}
