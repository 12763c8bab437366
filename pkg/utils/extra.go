package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Fingerprint returns a short stable hash of the given parts, normalized to
// lower case. Used to build cache keys from free-text input.
func Fingerprint(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(strings.ToLower(strings.TrimSpace(p))))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))[:32]
}
