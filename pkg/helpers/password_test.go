package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	encoded, err := HashPassword("pw123456")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("pw123456", encoded))
	assert.False(t, VerifyPassword("pw123457", encoded))
	assert.False(t, VerifyPassword("", encoded))
}

func TestHashPassword_EncodingShape(t *testing.T) {
	encoded, err := HashPassword("secret-password")
	require.NoError(t, err)

	saltHex, digestHex, ok := strings.Cut(encoded, ":")
	require.True(t, ok, "encoding must be salt_hex:digest_hex")
	assert.Len(t, saltHex, passwordSaltLen*2)
	assert.Len(t, digestHex, passwordKeyLen*2)
	assert.NotContains(t, encoded, "secret-password")
}

func TestHashPassword_SaltRandomization(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("same-password", first))
	assert.True(t, VerifyPassword("same-password", second))
}

func TestVerifyPassword_MalformedEncoding(t *testing.T) {
	cases := []string{
		"",
		"no-separator",
		"nothex:deadbeef",
		"deadbeef:nothex",
		"deadbeef:",
	}
	for _, encoded := range cases {
		assert.False(t, VerifyPassword("anything", encoded), "encoding %q must not verify", encoded)
	}
}
