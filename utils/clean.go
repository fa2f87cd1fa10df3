package utils

import "reflect"

// Clean returns a copy of body with empty values removed: nil entries,
// empty strings, empty slices, and nested maps that end up empty after
// cleaning. Zero numbers and false booleans are meaningful and kept.
//
// Clean is applied to request bodies before they are sent. Query parameters
// are never cleaned.
func Clean(body map[string]any) map[string]any {
	out := make(map[string]any, len(body))

	for key, value := range body {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			if v == "" {
				continue
			}
			out[key] = v
		case map[string]any:
			nested := Clean(v)
			if len(nested) == 0 {
				continue
			}
			out[key] = nested
		case []any:
			if len(v) == 0 {
				continue
			}
			out[key] = v
		default:
			// Typed slices ([]string, []LineItem, ...) still count as
			// empty when they have no elements.
			rv := reflect.ValueOf(value)
			if rv.Kind() == reflect.Slice && rv.Len() == 0 {
				continue
			}
			out[key] = value
		}
	}

	return out
}
