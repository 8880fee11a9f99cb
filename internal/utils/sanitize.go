package utils

import (
	"regexp"
	"strings"
)

// basic local@domain.tld shape, nothing more
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SanitizeEmail trims whitespace, strips angle brackets and caps the
// length at 255 before the value gets anywhere near a query.
func SanitizeEmail(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	if len(s) > 255 {
		s = s[:255]
	}
	return s
}

// ValidEmail reports whether a sanitized email looks like an email.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}
