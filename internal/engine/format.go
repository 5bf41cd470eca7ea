package engine

import (
	"math"
	"strconv"
	"strings"
)

// FormatValue renders a computed number back into raw display form.
// Non-finite values map onto the display sentinels; every finite value stays
// in plain decimal notation, so the raw display only ever holds digits, one
// optional point and an optional leading minus sign. Negative zero collapses
// to "0".
func FormatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return DisplayNaN
	case math.IsInf(v, 1):
		return DisplayInf
	case math.IsInf(v, -1):
		return DisplayNegInf
	case v == 0:
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatDisplay turns a raw display string into the human-readable readout:
// the integer part gains thousands separators, the fractional part and any
// trailing decimal point pass through verbatim, and the non-finite sentinels
// are returned unchanged.
func FormatDisplay(raw string) string {
	switch raw {
	case DisplayInf, DisplayNegInf, DisplayNaN:
		return raw
	}
	// Anything in exponent notation is not a plain digit string; grouping it
	// would split the exponent.
	if strings.ContainsAny(raw, "eE") {
		return raw
	}
	intPart, fracPart, hasFrac := strings.Cut(raw, ".")
	grouped := groupThousands(intPart)
	if hasFrac {
		return grouped + "." + fracPart
	}
	return grouped
}

func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}
	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String()
}
