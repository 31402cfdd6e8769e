package menu

import (
	"math"
	"testing"

	"github.com/dop251/goja"
)

// ============================================================================
// VALUE FORMATTING TESTS
// ============================================================================

var numberSamples = []float64{
	0, 1, 100, 250.5, -42.75,
	0.1 + 0.2, 1.0 / 3, 123456789.125,
	1e21, 1e20, 123456789012345680000,
	0.000001, 0.0000001, 1.5e-7, 5e-324, 1e300,
	math.MaxFloat64, 9007199254740993,
	math.Copysign(0, -1), math.NaN(), math.Inf(1), math.Inf(-1),
}

// TestFormatNumberMatchesECMAScript uses goja's String(x) as the reference.
func TestFormatNumberMatchesECMAScript(t *testing.T) {
	vm := goja.New()
	for _, f := range numberSamples {
		if err := vm.Set("x", f); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		v, err := vm.RunString("String(x)")
		if err != nil {
			t.Fatalf("RunString failed: %v", err)
		}
		assertEqual(t, formatNumber(f), v.String(), "formatNumber")
	}
}

func TestFormatNumberKnown(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{100, "100"},
		{0.1 + 0.2, "0.30000000000000004"},
		{1e21, "1e+21"},
		{1.5e-7, "1.5e-7"},
		{0.000001, "0.000001"},
		{-2.5, "-2.5"},
		{math.Copysign(0, -1), "0"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tt := range tests {
		assertEqual(t, formatNumber(tt.in), tt.want, "formatNumber")
	}
}

func TestToFixed2(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{250, "250.00"},
		{0, "0.00"},
		{150, "150.00"},
		{0.125, "0.13"},
		{2.5, "2.50"},
		{1.005, "1.00"},
		{0.005, "0.01"},
		{-1.5, "-1.50"},
		{-0.125, "-0.13"},
		{-0.001, "-0.00"},
		{math.Copysign(0, -1), "0.00"},
		{50.0 / 3, "16.67"},
		{1e21, "1e+21"},
		{1e20, "100000000000000000000.00"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tt := range tests {
		assertEqual(t, toFixed2(tt.in), tt.want, "toFixed2")
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		defined bool
		want    string
	}{
		{"undefined", nil, false, "undefined"},
		{"null", nil, true, "null"},
		{"string", "dal", true, "dal"},
		{"int", 7, true, "7"},
		{"float", 99.5, true, "99.5"},
		{"bool", false, true, "false"},
		{"nested sequence", []any{"a", nil, 1.5, []any{"b", "c"}}, true, "a,,1.5,b,c"},
		{"record", Record{"name": "x"}, true, "[object Object]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertEqual(t, stringify(tt.in, tt.defined), tt.want, tt.name)
		})
	}
}

func TestCaseMapping(t *testing.T) {
	assertEqual(t, upper("rajasthani thali"), "RAJASTHANI THALI", "upper")
	assertEqual(t, upper("straße"), "STRASSE", "upper ß")
	assertEqual(t, lower("Dal BAATI"), "dal baati", "lower")
}
