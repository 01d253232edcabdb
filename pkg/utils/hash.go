package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// fingerprintLen is long enough to correlate log lines for one submitter.
const fingerprintLen = 12

// Fingerprint returns a short SHA-256 hex digest of input so a phone number
// can be correlated across log lines without being logged.
func Fingerprint(input string) string {
	if input == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])[:fingerprintLen]
}
