package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrecisionString(t *testing.T) {
	assert.Equal(t, "nanoseconds", Nanoseconds.String())
	assert.Equal(t, "milliseconds", Milliseconds.String())
	assert.Equal(t, "years", Years.String())
	assert.Equal(t, "Precision(42)", Precision(42).String())
}

func TestPrecisionsOrdered(t *testing.T) {
	precisions := Precisions()

	assert.Len(t, precisions, 10)
	for idx, precision := range precisions {
		assert.Equal(t, Precision(idx), precision)
		assert.True(t, precision.Valid())
	}

	assert.False(t, Precision(10).Valid())
	assert.False(t, Precision(-1).Valid())
}

func TestParsePrecision(t *testing.T) {
	cases := []struct {
		input    string
		expected Precision
		ok       bool
	}{
		{"nanoseconds", Nanoseconds, true},
		{"Seconds", Seconds, true},
		{" MINUTES ", Minutes, true},
		{"ms", Milliseconds, true},
		{"us", Microseconds, true},
		{"mo", Months, true},
		{"Y", Years, true},
		{"fortnights", Nanoseconds, false},
		{"", Nanoseconds, false},
	}

	for _, tc := range cases {
		precision, ok := ParsePrecision(tc.input)

		assert.Equal(t, tc.expected, precision, "input=%q", tc.input)
		assert.Equal(t, tc.ok, ok, "input=%q", tc.input)
	}
}

func TestParsePrecisionRoundTrip(t *testing.T) {
	for _, precision := range Precisions() {
		parsed, ok := ParsePrecision(precision.String())

		assert.True(t, ok)
		assert.Equal(t, precision, parsed)
	}
}
