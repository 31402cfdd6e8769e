package menu

import (
	"fmt"
	"strings"
)

// Receipt builds a multi-line bill for customerName:
//
//	THALI RECEIPT
//	---
//	Customer: RAVI
//	- Thali1 x Rs.100
//	---
//	Total: Rs.100
//	Items: 1
//
// Line items print name and price raw (a missing price prints "undefined").
// The total sums numeric prices only and is printed without fixed decimals.
// Items counts every element. Receipt returns "" if customerName is not a
// string, or records is not a sequence or is empty.
func Receipt(customerName any, records any) string {
	customer, ok := asString(customerName)
	if !ok {
		return ""
	}
	seq, ok := asSequence(records)
	if !ok || len(seq) == 0 {
		return ""
	}

	lines := make([]string, len(seq))
	var total float64
	for i, t := range seq {
		name, nameDefined := field(t, KeyName)
		price, priceDefined := field(t, KeyPrice)
		lines[i] = fmt.Sprintf("- %s x Rs.%s", stringify(name, nameDefined), stringify(price, priceDefined))

		if p, ok := asNumber(price); ok {
			total += p
		}
	}

	var b strings.Builder
	b.WriteString("THALI RECEIPT\n---\n")
	fmt.Fprintf(&b, "Customer: %s\n", upper(customer))
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n---\n")
	fmt.Fprintf(&b, "Total: Rs.%s\n", formatNumber(total))
	fmt.Fprintf(&b, "Items: %d", len(seq))
	return b.String()
}
