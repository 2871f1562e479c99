package store

import (
	"crypto/rand"
	"encoding/hex"
	"io"
)

const (
	recipientTokenBytes = 16
	accessTokenBytes    = 32
)

// newToken returns n cryptographically random bytes, hex-encoded.
func newToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
