package helpers

import (
	"crypto/rand"
	"encoding/base64"
)

const sessionTokenBytes = 48

// NewSessionToken returns an opaque URL-safe token carrying 48 bytes of
// randomness. It has no embedded structure; it is only an unguessable
// store-backed handle.
func NewSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
