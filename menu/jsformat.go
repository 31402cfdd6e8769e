package menu

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ============================================================================
// VALUE FORMATTING — Text rendering of raw record values
// ============================================================================
// Menus are authored in JS-ish data files, so values render the way a JS
// template literal would print them: 250 not 250.000000, 1e+21 not 1e21,
// undefined for a missing field.
// ============================================================================

const (
	undefinedText = "undefined"
	nullText      = "null"
	objectText    = "[object Object]"
)

// formatNumber renders f with the shortest digits that round-trip, in fixed
// notation for exponents in [-7, 21) and exponential notation otherwise.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	case f < 0:
		return "-" + formatNumber(-f)
	}

	// "d.ddde±xx" → digits "dddd", n = decimal exponent + 1
	sci := strconv.FormatFloat(f, 'e', -1, 64)
	mant, expText, _ := strings.Cut(sci, "e")
	digits := strings.Replace(mant, ".", "", 1)
	exp, _ := strconv.Atoi(expText)
	n := exp + 1
	k := len(digits)

	switch {
	case k <= n && n <= 21:
		return digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return "0." + strings.Repeat("0", -n) + digits
	}

	sign := "+"
	if n-1 < 0 {
		sign = "-"
	}
	e := strconv.Itoa(abs(n - 1))
	if k == 1 {
		return digits + "e" + sign + e
	}
	return digits[:1] + "." + digits[1:] + "e" + sign + e
}

// toFixed2 renders f with exactly two fractional digits. Rounding works on the
// exact binary value and resolves ties away from zero.
func toFixed2(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if math.IsInf(f, 0) || math.Abs(f) >= 1e21 {
		return formatNumber(f)
	}

	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}

	scaled := new(big.Rat).SetFloat64(f)
	scaled.Mul(scaled, big.NewRat(100, 1))
	cents := new(big.Int).Quo(scaled.Num(), scaled.Denom())
	rem := new(big.Rat).Sub(scaled, new(big.Rat).SetInt(cents))
	if rem.Cmp(big.NewRat(1, 2)) >= 0 {
		cents.Add(cents, big.NewInt(1))
	}

	text := cents.String()
	if len(text) < 3 {
		text = strings.Repeat("0", 3-len(text)) + text
	}
	return sign + text[:len(text)-2] + "." + text[len(text)-2:]
}

// stringify renders a raw value as a template literal would. defined is false
// for a field that is absent from its record.
func stringify(v any, defined bool) string {
	if !defined {
		return undefinedText
	}
	if v == nil {
		return nullText
	}
	if s, ok := asString(v); ok {
		return s
	}
	if n, ok := asNumber(v); ok {
		return formatNumber(n)
	}
	if b, ok := asBool(v); ok {
		return strconv.FormatBool(b)
	}
	if seq, ok := asSequence(v); ok {
		return joinItems(seq, ",")
	}
	return objectText
}

// joinItems joins seq the way Array.prototype.join does: null elements
// become empty text, everything else renders through stringify.
func joinItems(seq []any, sep string) string {
	parts := make([]string, len(seq))
	for i, item := range seq {
		if item == nil {
			continue
		}
		parts[i] = stringify(item, true)
	}
	return strings.Join(parts, sep)
}

// upper and lower apply full Unicode case mapping ("ß" → "SS").
// Casers carry state, so one is built per call.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// ValueText renders a present field value as text: strings verbatim, numbers
// in shortest form, nil as "null", sequences comma-joined.
func ValueText(v any) string {
	return stringify(v, true)
}
