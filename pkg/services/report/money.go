package report

import (
	"strconv"
	"strings"
)

// ParseEuAmount parses a display-formatted monetary string using the
// European convention: "." as thousands separator, "," as decimal
// separator, optional euro symbol. Missing or unparsable amounts are
// worth zero, never an error.
func ParseEuAmount(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, "€", ""))
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
