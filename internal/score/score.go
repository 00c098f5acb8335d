// Package score normalizes raw SJR decimal strings into rounded integers.
package score

import (
	"math"
	"strconv"
	"strings"
)

// Parse normalizes a raw SJR field value and rounds it to the nearest
// integer, halves away from zero. ok is false when the field is empty or
// does not parse as a number; such rows carry no score.
func Parse(raw string) (value int, ok bool) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0, false
	}

	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = normalizeDecimal(cleaned)

	numeric, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}

	return int(math.Round(numeric)), true
}

// normalizeDecimal rewrites the value into dot-decimal form according to
// its separator style.
func normalizeDecimal(s string) string {
	switch Classify(s) {
	default:
		return s
	case SeparatorBoth:
		s = strings.ReplaceAll(s, ".", "")
		return strings.ReplaceAll(s, ",", ".")
	case SeparatorComma:
		return strings.ReplaceAll(s, ",", ".")
	}
}
