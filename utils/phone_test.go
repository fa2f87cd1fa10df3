package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bare digits", input: "19148440001", want: "+19148440001"},
		{name: "already canonical", input: "+19148440001", want: "+19148440001"},
		{name: "dashed", input: "1-914-844-0001", want: "+19148440001"},
		{name: "spaces and parens", input: "+1 (914) 844 0001", want: "+19148440001"},
		{name: "empty stays empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.input))
		})
	}
}

func TestIsE164(t *testing.T) {
	assert.True(t, IsE164("+19148440001"))
	assert.True(t, IsE164("+4915123456789"))
	assert.False(t, IsE164("19148440001"))
	assert.False(t, IsE164("+09148440001"))
	assert.False(t, IsE164("+1"))
	assert.False(t, IsE164(""))
}

func TestRequirePhone(t *testing.T) {
	phone, err := RequirePhone("1-914-844-0001")
	require.NoError(t, err)
	assert.Equal(t, "+19148440001", phone)

	_, err = RequirePhone("not-a-number")
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	// The message must echo the raw input, not the normalized form
	assert.Contains(t, err.Error(), "not-a-number")
}
