package screen

import (
	"strconv"
	"strings"
)

// decimal formats v as the shortest decimal that reads back to the same
// float64, always with a fractional part: 7.9, 79.0, 23.700000000000003.
func decimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.ContainsAny(s, ".NI") {
		return s
	}
	return s + ".0"
}
