package impl

import (
	"strconv"
	"strings"
)

// formatAmount renders a monetary amount the way the original API did:
// shortest decimal representation that round-trips, with integral values
// keeping a trailing ".0" (100 -> "100.0", 59.98 -> "59.98").
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}
