package loader

import (
	"github.com/mtgjson/mtgjson-sub003/core/utils"
)

// Record is one row of a provider snapshot table, read schema-on-read.
// Accessors normalize the loosely-typed decoded JSON values; a missing key
// yields the zero value rather than an error.
type Record map[string]any

// Has reports whether the record carries a non-nil value for key.
func (r Record) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// Str returns the value for key as a string.
func (r Record) Str(key string) string {
	v, ok := r[key]
	if !ok {
		return ""
	}
	return utils.ToString(v)
}

// Int returns the value for key as an int.
func (r Record) Int(key string) int {
	v, ok := r[key]
	if !ok {
		return 0
	}
	return utils.ToInt(v)
}

// IntPtr returns the value for key as an *int, or nil when absent.
func (r Record) IntPtr(key string) *int {
	if !r.Has(key) {
		return nil
	}
	n := utils.ToInt(r[key])
	return &n
}

// Float returns the value for key as a float64.
func (r Record) Float(key string) float64 {
	v, ok := r[key]
	if !ok {
		return 0
	}
	return utils.ToFloat(v)
}

// FloatPtr returns the value for key as a *float64, or nil when absent.
func (r Record) FloatPtr(key string) *float64 {
	if !r.Has(key) {
		return nil
	}
	f := utils.ToFloat(r[key])
	return &f
}

// Bool returns the value for key as a bool.
func (r Record) Bool(key string) bool {
	v, ok := r[key]
	if !ok {
		return false
	}
	return utils.ToBool(v)
}

// Strings returns the value for key as a string slice.
func (r Record) Strings(key string) []string {
	v, ok := r[key]
	if !ok {
		return nil
	}
	return utils.ToStrings(v)
}

// StringMap returns the value for key as a string-to-string map.
func (r Record) StringMap(key string) map[string]string {
	v, ok := r[key]
	if !ok || v == nil {
		return nil
	}
	switch m := v.(type) {
	case map[string]string:
		return m
	case map[string]any:
		out := make(map[string]string, len(m))
		for k, item := range m {
			out[k] = utils.ToString(item)
		}
		return out
	default:
		return nil
	}
}

// Records returns the value for key as a slice of nested records.
func (r Record) Records(key string) []Record {
	v, ok := r[key]
	if !ok || v == nil {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]Record, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, Record(m))
		}
	}
	return out
}
