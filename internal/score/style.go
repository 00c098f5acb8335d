package score

import "strings"

//go:generate go tool stringer -type=SeparatorStyle -output=separatorstyle_string.go

// SeparatorStyle classifies which decimal separators a raw score contains.
type SeparatorStyle int

const (
	SeparatorNone  SeparatorStyle = iota // no separator: plain integer text
	SeparatorDot                         // '.' only: already in dot-decimal form
	SeparatorComma                       // ',' only: comma is the decimal point
	SeparatorBoth                        // both: '.' separates thousands, ',' is the decimal point
)

// Classify inspects a cleaned score string and returns its separator style.
func Classify(s string) SeparatorStyle {
	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")

	switch {
	case hasComma && hasDot:
		return SeparatorBoth
	case hasComma:
		return SeparatorComma
	case hasDot:
		return SeparatorDot
	default:
		return SeparatorNone
	}
}
