package math

import (
	"strconv"
	"strings"
)

// DefaultPrecision is the number of decimal digits used when formatting predictions.
const DefaultPrecision = 2

// Format formats a float based on the given precision.
// NaN and infinities are formatted as "NaN", "+Inf" and "-Inf".
func Format(f float64, precision int) string {
	return strconv.FormatFloat(f, 'f', precision, 64)
}

// FormatAll formats every value with the given precision, comma separated.
func FormatAll(ff []float64, precision int) string {
	ss := make([]string, len(ff))
	for i, f := range ff {
		ss[i] = Format(f, precision)
	}
	return strings.Join(ss, ", ")
}
