package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateHexToken returns a random hex string of size bytes (2*size chars).
// Used for password-reset tokens.
func GenerateHexToken(size int) (string, error) {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
