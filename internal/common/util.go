package common

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// MakeRandHexString reads size bytes from the system CSPRNG and returns them
// hex-encoded (2*size characters).
func MakeRandHexString(size int) (string, error) {
	if size < 0 {
		return "", fmt.Errorf("random string size %d is negative", size)
	}
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// WipeByteArray overwrites a password buffer once it has been used.
func WipeByteArray(b []byte) {
	clear(b)
}
