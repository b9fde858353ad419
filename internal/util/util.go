// Package util holds small helpers shared across packages.
package util

import "strings"

// MaskCardNumber obscures a card number for logging, keeping the BIN and the
// last four digits.
func MaskCardNumber(number string) string {
	trimmed := strings.TrimSpace(number)
	if len(trimmed) <= 8 {
		return strings.Repeat("*", len(trimmed))
	}
	return trimmed[:4] + strings.Repeat("*", len(trimmed)-8) + trimmed[len(trimmed)-4:]
}

// MaskToken obscures a bearer token for logging, showing only the first and
// last few characters.
func MaskToken(token string) string {
	if len(token) > 8 {
		return token[:4] + "..." + token[len(token)-4:]
	}
	if len(token) > 2 {
		return token[:1] + "..." + token[len(token)-1:]
	}
	return "..."
}
