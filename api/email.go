package api

import (
	"regexp"
	"strings"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// isValidEmail reports whether email has a plausible address syntax:
// local part, "@", domain and TLD, no whitespace. Case-insensitive by
// construction of the pattern.
func isValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// normalizeEmail lowercases and trims an address for membership checks.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
