package menu

import (
	"reflect"
)

// ============================================================================
// FIELD ACCESS — Type guards over duck-typed records
// ============================================================================
// Records arrive as maps, typed Thali values, or anything else a caller hands
// over. Every read goes through field(); every type check goes through one of
// the as* guards. No value is ever coerced from one kind to another.
// ============================================================================

// fieldsOf returns the key/value view of v and whether v is a record at all.
// Anything that is not a record reads as one with no fields.
func fieldsOf(v any) (map[string]any, bool) {
	switch r := v.(type) {
	case nil:
		return nil, false
	case Record:
		return r, r != nil
	case map[string]any:
		return r, r != nil
	case Thali:
		return r.Record(), true
	case *Thali:
		if r == nil {
			return nil, false
		}
		return r.Record(), true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.IsNil() || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}

// field reads key from v. ok is false when the key is absent (undefined).
func field(v any, key string) (value any, ok bool) {
	m, isRecord := fieldsOf(v)
	if !isRecord {
		return nil, false
	}
	value, ok = m[key]
	return value, ok
}

// asString reports whether v is a string.
func asString(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

// asNumber reports whether v is numeric and returns it as float64.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// asBool reports whether v is a boolean.
func asBool(v any) (bool, bool) {
	if b, ok := v.(bool); ok {
		return b, true
	}
	if v == nil {
		return false, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Bool {
		return rv.Bool(), true
	}
	return false, false
}

// asSequence reports whether v is a slice or array and returns its elements.
// A nil slice is an empty sequence.
func asSequence(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []Record:
		out := make([]any, len(s))
		for i, r := range s {
			out[i] = r
		}
		return out, true
	case []Thali:
		out := make([]any, len(s))
		for i, t := range s {
			out[i] = t
		}
		return out, true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// Field reads key from record v. ok is false when v is not a record or the
// key is absent.
func Field(v any, key string) (value any, ok bool) {
	return field(v, key)
}
