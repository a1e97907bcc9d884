package shared

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionalInt(t *testing.T) {
	v, err := ParseOptionalInt("")
	assert.NoError(t, err)
	assert.Nil(t, v)

	v, err = ParseOptionalInt(" 1999 ")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 1999, *v)

	_, err = ParseOptionalInt("nineteen")
	assert.True(t, errors.Is(err, ErrInvalidNumber))
}

func TestParseOptionalInt64(t *testing.T) {
	v, err := ParseOptionalInt64("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), *v)

	v, err = ParseOptionalInt64("   ")
	assert.NoError(t, err)
	assert.Nil(t, v)

	_, err = ParseOptionalInt64("4.2")
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestParseOptionalFloat(t *testing.T) {
	tests := []struct {
		input    string
		expected *float64
		hasError bool
	}{
		{"", nil, false},
		{"8.5", ptr(8.5), false},
		{"7,25", ptr(7.25), false},
		{"10", ptr(10), false},
		{"great", nil, true},
		{"inf", nil, true},
		{"+Inf", nil, true},
		{"-infinity", nil, true},
		{"1e999", nil, true},
		{"NaN", nil, true},
	}
	for _, tc := range tests {
		v, err := ParseOptionalFloat(tc.input)
		if tc.hasError {
			assert.ErrorIs(t, err, ErrInvalidNumber, "input %q", tc.input)
			continue
		}
		assert.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.expected, v, "input %q", tc.input)
	}
}

func ptr(f float64) *float64 { return &f }
