package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBoolean(t *testing.T) {
	accepted := []struct {
		in   interface{}
		want bool
	}{
		{true, true},
		{false, false},
		{"true", true},
		{"false", false},
		{"1", true},
		{"0", false},
		{float64(1), true},
		{float64(0), false},
	}
	for _, tc := range accepted {
		got, err := ParseBoolean(tc.in)
		require.NoError(t, err, "%v", tc.in)
		assert.Equal(t, tc.want, got, "%v", tc.in)
	}

	rejected := []interface{}{"yes", "no", "TRUE", "on", "", float64(2), float64(0.5), nil, []string{"true"}}
	for _, in := range rejected {
		_, err := ParseBoolean(in)
		assert.Error(t, err, "%v", in)
	}
}

func TestStringToUint(t *testing.T) {
	n, err := StringToUint("42")
	require.NoError(t, err)
	assert.Equal(t, uint(42), n)

	for _, s := range []string{"", "abc", "-1", "1.5"} {
		_, err := StringToUint(s)
		assert.Error(t, err, s)
	}
}
