package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDisplay(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "small integer untouched", raw: "123", want: "123"},
		{name: "four digits grouped", raw: "1234", want: "1,234"},
		{name: "millions grouped", raw: "1234567", want: "1,234,567"},
		{name: "negative grouped", raw: "-1234567", want: "-1,234,567"},
		{name: "fraction passes verbatim", raw: "1234567.8901", want: "1,234,567.8901"},
		{name: "trailing zeros kept", raw: "2500.500", want: "2,500.500"},
		{name: "trailing point kept", raw: "1000.", want: "1,000."},
		{name: "zero", raw: "0", want: "0"},
		{name: "small fraction ungrouped", raw: "0.0000001", want: "0.0000001"},
		{name: "exponent text passes through", raw: "1e-07", want: "1e-07"},
		{name: "uppercase exponent passes through", raw: "1E+21", want: "1E+21"},
		{name: "infinity passes through", raw: DisplayInf, want: DisplayInf},
		{name: "negative infinity passes through", raw: DisplayNegInf, want: DisplayNegInf},
		{name: "nan passes through", raw: DisplayNaN, want: DisplayNaN},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatDisplay(tc.raw))
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{name: "integer result", v: 20, want: "20"},
		{name: "negative integer", v: -3, want: "-3"},
		{name: "fraction", v: 0.5, want: "0.5"},
		{name: "large value stays decimal", v: 20000000, want: "20000000"},
		{name: "huge value stays decimal", v: 1e21, want: "1000000000000000000000"},
		{name: "tiny value stays decimal", v: 1e-7, want: "0.0000001"},
		{name: "negative zero collapses", v: math.Copysign(0, -1), want: "0"},
		{name: "positive infinity", v: math.Inf(1), want: DisplayInf},
		{name: "negative infinity", v: math.Inf(-1), want: DisplayNegInf},
		{name: "nan", v: math.NaN(), want: DisplayNaN},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatValue(tc.v))
		})
	}
}

func TestFormatValueRoundTripsThroughValue(t *testing.T) {
	s := New()
	s.Display = FormatValue(110)
	assert.Equal(t, 110.0, s.Value())
}
