package menu

import (
	"encoding/json"
	"math"
)

// ============================================================================
// MENU TYPES — Thali records and the stats summary
// ============================================================================
// The four entry points accept records in duck-typed form (map[string]any, as
// decoded from JSON, YAML or JS literals) or as typed Thali values. Field
// access goes through fields.go; nothing here is mutated.
// ============================================================================

// Field keys of a thali record.
const (
	KeyName  = "name"
	KeyItems = "items"
	KeyPrice = "price"
	KeyIsVeg = "isVeg"
)

// Record is a thali in duck-typed form. Keys are the Key* constants; values
// may be of any type.
type Record map[string]any

// Thali is a combo meal in typed form.
type Thali struct {
	Name  string   `json:"name" yaml:"name"`
	Items []string `json:"items" yaml:"items"`
	Price float64  `json:"price" yaml:"price"`
	IsVeg bool     `json:"isVeg" yaml:"isVeg"`
}

// Record returns the duck-typed view of t.
func (t Thali) Record() Record {
	items := make([]any, len(t.Items))
	for i, item := range t.Items {
		items[i] = item
	}
	return Record{
		KeyName:  t.Name,
		KeyItems: items,
		KeyPrice: t.Price,
		KeyIsVeg: t.IsVeg,
	}
}

// Stats summarises a sequence of thali records.
type Stats struct {
	TotalThalis int     `json:"totalThalis"`
	VegCount    int     `json:"vegCount"`
	NonVegCount int     `json:"nonVegCount"`
	AvgPrice    string  `json:"avgPrice"`  // fixed 2 decimals
	Cheapest    float64 `json:"cheapest"`  // +Inf when no price is numeric
	Costliest   float64 `json:"costliest"` // -Inf when no price is numeric
	Names       []any   `json:"names"`
}

// MarshalJSON writes non-finite extremes as null, the way JSON.stringify does.
func (s Stats) MarshalJSON() ([]byte, error) {
	type plain struct {
		TotalThalis int      `json:"totalThalis"`
		VegCount    int      `json:"vegCount"`
		NonVegCount int      `json:"nonVegCount"`
		AvgPrice    string   `json:"avgPrice"`
		Cheapest    *float64 `json:"cheapest"`
		Costliest   *float64 `json:"costliest"`
		Names       []any    `json:"names"`
	}
	names := s.Names
	if names == nil {
		names = []any{}
	}
	return json.Marshal(plain{
		TotalThalis: s.TotalThalis,
		VegCount:    s.VegCount,
		NonVegCount: s.NonVegCount,
		AvgPrice:    s.AvgPrice,
		Cheapest:    finiteOrNil(s.Cheapest),
		Costliest:   finiteOrNil(s.Costliest),
		Names:       names,
	})
}

func finiteOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
