package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "classdrop/internal/errors"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	for _, pw := range []string{"pw1", "correct horse battery staple", "ünïcødé", " "} {
		digest, err := HashPassword(pw)
		require.NoError(t, err)
		assert.NotEqual(t, pw, digest)
		assert.True(t, CheckPassword(pw, digest))
		assert.False(t, CheckPassword(pw+"x", digest))
	}
}

func TestHashPassword_Salted(t *testing.T) {
	a, err := HashPassword("pw1")
	require.NoError(t, err)
	b, err := HashPassword("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	assert.False(t, CheckPassword("pw1", ""))
	assert.False(t, CheckPassword("pw1", "not-a-bcrypt-hash"))
	assert.False(t, CheckPassword("", "$2a$10$"))
}

func TestHashPassword_ByteLimit(t *testing.T) {
	digest, err := HashPassword(strings.Repeat("a", MaxPasswordBytes))
	require.NoError(t, err)
	assert.True(t, CheckPassword(strings.Repeat("a", MaxPasswordBytes), digest))

	// 40 characters, 80 bytes
	_, err = HashPassword(strings.Repeat("é", 40))
	assert.ErrorIs(t, err, apperrors.ErrPasswordTooLong)
}
