package menu

import (
	"math"
)

// ============================================================================
// STATS — Counts, average, extremes and names over a thali sequence
// ============================================================================
// Only price and isVeg are type-checked. Names are copied raw, so a record
// without a string name still contributes whatever it holds (nil if absent).
// ============================================================================

// ComputeStats aggregates records. It returns nil if records is not a
// sequence or is empty.
func ComputeStats(records any) *Stats {
	seq, ok := asSequence(records)
	if !ok || len(seq) == 0 {
		return nil
	}

	s := &Stats{
		TotalThalis: len(seq),
		Cheapest:    math.Inf(1),
		Costliest:   math.Inf(-1),
		Names:       make([]any, len(seq)),
	}

	var total float64
	for i, t := range seq {
		rawVeg, _ := field(t, KeyIsVeg)
		if isVeg, ok := asBool(rawVeg); ok {
			if isVeg {
				s.VegCount++
			} else {
				s.NonVegCount++
			}
		}

		rawPrice, _ := field(t, KeyPrice)
		if price, ok := asNumber(rawPrice); ok {
			total += price
			s.Cheapest = math.Min(s.Cheapest, price)
			s.Costliest = math.Max(s.Costliest, price)
		}

		s.Names[i], _ = field(t, KeyName)
	}

	s.AvgPrice = toFixed2(total / float64(s.TotalThalis))
	return s
}
