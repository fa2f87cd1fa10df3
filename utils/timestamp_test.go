package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTimestampReformatsInput(t *testing.T) {
	out, err := ResolveTimestamp("2024-01-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15T10:30:00.000Z", out)

	out, err = ResolveTimestamp("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15T00:00:00.000Z", out)
}

func TestResolveTimestampDefaultsToNow(t *testing.T) {
	before := time.Now().UTC().Truncate(time.Millisecond)

	out, err := ResolveTimestamp("")
	require.NoError(t, err)

	after := time.Now().UTC()

	resolved, err := time.Parse("2006-01-02T15:04:05.000Z", out)
	require.NoError(t, err)
	assert.False(t, resolved.Before(before))
	assert.False(t, resolved.After(after))
}

func TestResolveTimestampRejectsGarbage(t *testing.T) {
	_, err := ResolveTimestamp("yesterday-ish")
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, err.Error(), "yesterday-ish")
}
