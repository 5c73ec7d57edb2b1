package helper

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// GeneratePaymentID returns a 10-character upper-case hex token from 5
// random bytes. The value space dwarfs the expected record count, so
// collisions are not handled here.
func GeneratePaymentID() (string, error) {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate payment id: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}
