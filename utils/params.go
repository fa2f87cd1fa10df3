package utils

import (
	"github.com/spf13/cast"
)

// Params holds the per-item parameter values bound by the workflow host.
// Values arrive loosely typed (JSON shapes), so all getters coerce.
type Params map[string]any

func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

func (p Params) GetString(key string) string {
	return cast.ToString(p[key])
}

func (p Params) GetBool(key string) bool {
	return cast.ToBool(p[key])
}

// GetInt returns the parameter as an int, or fallback when the parameter is
// absent or not parseable as a number.
func (p Params) GetInt(key string, fallback int) int {
	v, ok := p[key]
	if !ok {
		return fallback
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return fallback
	}
	return n
}

func (p Params) GetFloat(key string) float64 {
	return cast.ToFloat64(p[key])
}

// GetSlice returns the parameter as a []any, or nil when absent or not a
// list.
func (p Params) GetSlice(key string) []any {
	v, ok := p[key]
	if !ok {
		return nil
	}
	out, err := cast.ToSliceE(v)
	if err != nil {
		return nil
	}
	return out
}

// ParseAttributeList converts a host-supplied list of {key, value} pairs into
// a flat mapping. Pairs with an empty key or no explicit value are skipped.
// Duplicate keys follow last-write-wins.
func ParseAttributeList(input any) map[string]any {
	out := make(map[string]any)

	for _, entry := range toMapSlice(input) {
		key := cast.ToString(entry["key"])
		if key == "" {
			continue
		}
		value, ok := entry["value"]
		if !ok || value == nil {
			continue
		}
		out[key] = value
	}

	return out
}

// toMapSlice coerces the loosely typed host input into a list of maps,
// dropping elements of any other shape.
func toMapSlice(input any) []map[string]any {
	switch v := input.(type) {
	case nil:
		return nil
	case []map[string]any:
		return v
	case []any:
		out := make([]map[string]any, 0, len(v))
		for _, el := range v {
			if m, ok := el.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	case map[string]any:
		return []map[string]any{v}
	default:
		return nil
	}
}

// ToResultList converts an API response payload into the per-record result
// list the dispatcher emits. List payloads yield one record per element;
// anything else becomes a single record.
func ToResultList(payload any) []map[string]any {
	switch v := payload.(type) {
	case nil:
		return []map[string]any{}
	case []map[string]any:
		return v
	case []any:
		out := make([]map[string]any, 0, len(v))
		for _, el := range v {
			if m, ok := el.(map[string]any); ok {
				out = append(out, m)
			} else {
				out = append(out, map[string]any{"value": el})
			}
		}
		return out
	case map[string]any:
		return []map[string]any{v}
	default:
		return []map[string]any{{"value": payload}}
	}
}
