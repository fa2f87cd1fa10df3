package utils

import (
	"fmt"
	"regexp"
)

// e164Pattern matches "+", a country-code digit 1-9, then 1-14 more digits.
var e164Pattern = regexp.MustCompile(`^\+[1-9][0-9]{1,14}$`)

// NormalizePhone strips everything except digits from the input and prefixes
// a "+". Formatting characters like dashes, spaces and parentheses are
// tolerated. An empty input stays empty.
func NormalizePhone(input string) string {
	if input == "" {
		return ""
	}

	digits := make([]byte, 0, len(input))
	for i := 0; i < len(input); i++ {
		if input[i] >= '0' && input[i] <= '9' {
			digits = append(digits, input[i])
		}
	}

	return "+" + string(digits)
}

// IsE164 reports whether the input is a canonical E.164 phone number.
func IsE164(input string) bool {
	return e164Pattern.MatchString(input)
}

// RequirePhone normalizes the input and fails when the result is not a valid
// E.164 number. The returned error names the original input, not the
// normalized form, so the caller can see what the host actually supplied.
func RequirePhone(input string) (string, error) {
	normalized := NormalizePhone(input)
	if !IsE164(normalized) {
		return "", &ValidationError{
			Field:  "phone",
			Value:  input,
			Reason: "must be a valid E.164 number, e.g. +19148440001",
		}
	}
	return normalized, nil
}

// ValidationError signals a malformed per-item parameter. It always echoes
// the raw value the host supplied.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}
