package multiplier

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntOrAbsent_Valid(t *testing.T) {
	tests := []struct {
		in   string
		want int32
	}{
		{"0", 0},
		{"42", 42},
		{"-7", -7},
		{"+7", 7},
		{"007", 7},
		{"2147483647", 2147483647},
		{"-2147483648", -2147483648},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var out bytes.Buffer
			got := ParseIntOrAbsent(&out, tt.in)

			v, ok := got.Get()
			require.True(t, ok, "expected a present value")
			assert.Equal(t, tt.want, v)
			assert.Empty(t, out.String(), "no diagnostic on success")
		})
	}
}

func TestParseIntOrAbsent_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"abc",
		"1.5",
		" 1",
		"1 ",
		"1_000",
		"0x10",
		"-",
		"2147483648",
		"-2147483649",
		"99999999999999999999",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			var out bytes.Buffer
			got := ParseIntOrAbsent(&out, in)

			assert.False(t, got.IsPresent())
			assert.Equal(t, MsgNotAnInt+"\n", out.String(), "exactly one diagnostic line")
		})
	}
}

func TestParseInt32_ErrorCause(t *testing.T) {
	_, err := parseInt32("abc")
	require.Error(t, err)
	assert.Equal(t, ErrUnparsableInteger, errors.Cause(err))
	assert.Contains(t, err.Error(), `"abc"`)

	_, err = parseInt32("2147483648")
	require.Error(t, err)
	assert.Equal(t, ErrUnparsableInteger, errors.Cause(err))
	assert.Contains(t, err.Error(), "out of range")
}
