package menu

import (
	"errors"
	"fmt"
)

// Parse errors. Parse wraps exactly one of these.
var (
	ErrNotRecord = errors.New("thali is not a record")
	ErrName      = errors.New("thali name is not a string")
	ErrItems     = errors.New("thali items is not a sequence")
	ErrPrice     = errors.New("thali price is not a number")
	ErrIsVeg     = errors.New("thali isVeg is not a boolean")
)

// Parse validates v strictly and returns it in typed form. All four fields
// must be present with the exact kind: name string, items a sequence, price a
// number, isVeg a boolean. Item elements are not checked; Items holds their
// text rendering.
func Parse(v any) (Thali, error) {
	if _, ok := fieldsOf(v); !ok {
		return Thali{}, ErrNotRecord
	}

	rawName, _ := field(v, KeyName)
	name, ok := asString(rawName)
	if !ok {
		return Thali{}, fmt.Errorf("%w: got %T", ErrName, rawName)
	}

	rawItems, _ := field(v, KeyItems)
	seq, ok := asSequence(rawItems)
	if !ok {
		return Thali{}, fmt.Errorf("%w: got %T", ErrItems, rawItems)
	}

	rawPrice, _ := field(v, KeyPrice)
	price, ok := asNumber(rawPrice)
	if !ok {
		return Thali{}, fmt.Errorf("%w: got %T", ErrPrice, rawPrice)
	}

	rawVeg, _ := field(v, KeyIsVeg)
	isVeg, ok := asBool(rawVeg)
	if !ok {
		return Thali{}, fmt.Errorf("%w: got %T", ErrIsVeg, rawVeg)
	}

	items := make([]string, len(seq))
	for i, item := range seq {
		if item != nil {
			items[i] = stringify(item, true)
		}
	}

	return Thali{Name: name, Items: items, Price: price, IsVeg: isVeg}, nil
}
