package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("super_password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "super_password123", hash)

	assert.True(t, CheckPasswordHash("super_password123", hash))
	assert.False(t, CheckPasswordHash("wrong_password", hash))
}

func TestHashPassword_EmptyRejected(t *testing.T) {
	t.Parallel()

	_, err := HashPassword("")
	assert.Error(t, err)
}

func TestCheckPasswordHash_GarbageDigest(t *testing.T) {
	t.Parallel()

	assert.False(t, CheckPasswordHash("password", "not-a-bcrypt-digest"))
}
