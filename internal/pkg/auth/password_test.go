package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("my-secret-password")
	require.NoError(t, err)

	assert.NotEqual(t, "my-secret-password", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	// Same input hashes to a different value each time
	other, err := HashPassword("my-secret-password")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("my-secret-password")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "my-secret-password"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
	assert.False(t, CheckPassword(hash, ""))
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "my-secret-password"))
}
