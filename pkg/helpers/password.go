package helpers

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Parameters are fixed; the salt_hex:digest_hex format is algorithm-implicit,
// so changing any of them requires a tagged format and a re-hash path.
const (
	passwordSaltLen    = 16
	passwordIterations = 200_000
	passwordKeyLen     = 32
)

// HashPassword derives a PBKDF2-HMAC-SHA256 digest from the plaintext under a
// fresh random salt and returns the storable "salt_hex:digest_hex" encoding.
// Two calls with the same password produce different encodings.
func HashPassword(plain string) (string, error) {
	salt := make([]byte, passwordSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	digest := pbkdf2.Key([]byte(plain), salt, passwordIterations, passwordKeyLen, sha256.New)
	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(digest), nil
}

// VerifyPassword recomputes the digest for plain under the salt embedded in
// encoded and compares in constant time. Malformed encodings never verify.
func VerifyPassword(plain, encoded string) bool {
	saltHex, digestHex, ok := strings.Cut(encoded, ":")
	if !ok {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	expected, err := hex.DecodeString(digestHex)
	if err != nil || len(expected) == 0 {
		return false
	}
	calculated := pbkdf2.Key([]byte(plain), salt, passwordIterations, len(expected), sha256.New)
	return subtle.ConstantTimeCompare(calculated, expected) == 1
}
