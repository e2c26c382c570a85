package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, CheckPassword(hash, "wrong password"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestHashPasswordDistinctHashes(t *testing.T) {
	first, err := HashPassword("same password")
	require.NoError(t, err)
	second, err := HashPassword("same password")
	require.NoError(t, err)

	// bcrypt salts each hash, so two hashes of the same password differ.
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword(first, "same password"))
	assert.True(t, CheckPassword(second, "same password"))
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "anything"))
	assert.False(t, CheckPassword("", "anything"))
}
