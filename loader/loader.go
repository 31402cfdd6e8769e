// Package loader reads menu files into the record sequences consumed by
// package menu.
//
// Supported formats are JSON, YAML, CSV and JS object literals. Every decoder
// returns []any whose elements are map[string]any records; field values keep
// whatever type the source gave them, so the leniency rules of package menu
// apply unchanged.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format names an input encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
	FormatJS   Format = "js"
)

var (
	// ErrUnknownFormat is returned for a format or extension the loader
	// cannot decode.
	ErrUnknownFormat = errors.New("unknown menu format")

	// ErrNotSequence is returned when a file decodes to something other
	// than a list of records.
	ErrNotSequence = errors.New("menu file is not a list")
)

// ParseFormat maps a name ("json", "yml", ...) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "csv":
		return FormatCSV, nil
	case "js", "javascript":
		return FormatJS, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Load reads path and decodes it. The format comes from WithFormat or, if
// unset, from the file extension.
func Load(path string, opts ...Option) ([]any, error) {
	cfg := applyOptions(opts)

	format := cfg.Format
	if format == "" {
		f, err := ParseFormat(filepath.Ext(path))
		if err != nil {
			return nil, err
		}
		format = f
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file: %w", err)
	}
	return decode(data, format, cfg)
}

// Decode turns raw menu bytes in the given format into records.
func Decode(data []byte, format Format, opts ...Option) ([]any, error) {
	return decode(data, format, applyOptions(opts))
}

func decode(data []byte, format Format, cfg *config) ([]any, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	case FormatCSV:
		return decodeCSV(data, cfg.ItemSeparator)
	case FormatJS:
		return decodeJS(data, cfg.ScriptTimeout)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
