package utils

import "strings"

// MaskEmail hides the local part of an address except its first and last
// character, e.g. "jane@example.com" -> "j**e@example.com".
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndexByte(email, '@')
	if at <= 0 {
		return maskToken(email)
	}
	return maskToken(email[:at]) + email[at:]
}

func maskToken(s string) string {
	runes := []rune(s)
	switch n := len(runes); {
	case n <= 1:
		return s
	case n == 2:
		return string(runes[0]) + "*"
	default:
		return string(runes[0]) + strings.Repeat("*", n-2) + string(runes[n-1])
	}
}
