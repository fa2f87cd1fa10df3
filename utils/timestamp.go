package utils

import (
	"strings"
	"time"
)

// timestampLayout is ISO-8601 with millisecond precision and a Z offset,
// the shape the platform expects for every timestamp field.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// timestampInputLayouts are the accepted input shapes, tried in order.
var timestampInputLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ResolveTimestamp returns the current instant when input is empty,
// otherwise the parsed input, both formatted as ISO-8601 UTC with
// millisecond precision. An unparseable non-empty input is a validation
// failure naming the raw value.
func ResolveTimestamp(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return time.Now().UTC().Format(timestampLayout), nil
	}

	for _, layout := range timestampInputLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.UTC().Format(timestampLayout), nil
		}
	}

	return "", &ValidationError{
		Field:  "timestamp",
		Value:  input,
		Reason: "unrecognized date format",
	}
}
