// Package issn validates and normalizes ISSN identifiers.
package issn

import (
	"regexp"
	"strings"
)

// Delimiter separates multiple ISSNs within a single CSV field.
const Delimiter = ","

// pattern matches an ISSN-like token: four digits, an optional dash,
// three digits and a final digit or check character X/x.
// Validity is pattern-based, not checksum-based.
var pattern = regexp.MustCompile(`^[0-9]{4}-?[0-9]{3}[0-9Xx]$`)

// IsValid reports whether value looks like an ISSN.
func IsValid(value string) bool {
	return pattern.MatchString(value)
}

// Normalize removes internal spaces while preserving the dash as given.
func Normalize(value string) string {
	return strings.ReplaceAll(value, " ", "")
}

// ParseList parses a raw CSV field into individual normalized ISSNs.
// Pieces that do not match the ISSN pattern are discarded silently.
// Duplicates within one field are kept; map insertion resolves them.
func ParseList(field string) []string {
	if field == "" {
		return nil
	}

	var issns []string

	for _, part := range strings.Split(field, Delimiter) {
		cleaned := strings.TrimSpace(part)
		if cleaned != "" && IsValid(cleaned) {
			issns = append(issns, Normalize(cleaned))
		}
	}

	return issns
}

// CountTokens returns the number of non-empty pieces in a raw ISSN field,
// counted before validation.
func CountTokens(field string) int {
	if field == "" {
		return 0
	}

	count := 0

	for _, part := range strings.Split(field, Delimiter) {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}

	return count
}
