package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanDropsEmptyValues(t *testing.T) {
	body := map[string]any{
		"a": "v",
		"b": nil,
		"c": "",
		"d": []any{},
	}

	assert.Equal(t, map[string]any{"a": "v"}, Clean(body))
}

func TestCleanKeepsMeaningfulZeroValues(t *testing.T) {
	body := map[string]any{
		"count":   0,
		"enabled": false,
		"ratio":   0.0,
	}

	cleaned := Clean(body)
	assert.Equal(t, 0, cleaned["count"])
	assert.Equal(t, false, cleaned["enabled"])
	assert.Equal(t, 0.0, cleaned["ratio"])
}

func TestCleanRemovesEmptyNestedMaps(t *testing.T) {
	body := map[string]any{
		"user": map[string]any{
			"phone": "",
			"meta":  map[string]any{},
		},
		"keep": map[string]any{"name": "x"},
	}

	cleaned := Clean(body)
	// The nested map collapses to empty and is removed entirely
	assert.NotContains(t, cleaned, "user")
	assert.Equal(t, map[string]any{"name": "x"}, cleaned["keep"])
}

func TestCleanKeepsNonEmptySlicesVerbatim(t *testing.T) {
	items := []any{map[string]any{"productId": "", "name": "shirt"}}
	cleaned := Clean(map[string]any{"items": items})

	// Slice elements are not recursed into
	assert.Equal(t, items, cleaned["items"])
}

func TestCleanDropsEmptyTypedSlices(t *testing.T) {
	cleaned := Clean(map[string]any{
		"names": []string{},
		"tags":  []string{"a"},
	})

	assert.NotContains(t, cleaned, "names")
	assert.Equal(t, []string{"a"}, cleaned["tags"])
}
