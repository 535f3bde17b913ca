package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NotEqual(t, "s3cret", hash)
	assert.NoError(t, CheckPassword(hash, "s3cret"))
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.Error(t, CheckPassword(hash, "not-the-password"))
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	first, err := HashPassword("s3cret")
	require.NoError(t, err)

	second, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	assert.Error(t, CheckPassword("not-a-bcrypt-hash", "s3cret"))
}
