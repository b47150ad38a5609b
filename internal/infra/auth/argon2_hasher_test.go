package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgon2Hasher_Hash(t *testing.T) {
	hasher := NewArgon2Hasher()

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestArgon2Hasher_HashIsSalted(t *testing.T) {
	hasher := NewArgon2Hasher()

	password := "StrongPass123!"
	first, err := hasher.Hash(password)
	assert.NoError(t, err)
	second, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Different salts must produce different encodings
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check(password, first))
	assert.True(t, hasher.Check(password, second))
}

func TestArgon2Hasher_Check(t *testing.T) {
	hasher := NewArgon2Hasher()
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("WrongPassword123!", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestArgon2Hasher_CheckMalformedHashes(t *testing.T) {
	hasher := NewArgon2Hasher()

	malformed := []string{
		"",
		"$argon2id$",
		"$argon2i$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA",
		"$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$!!!",
		"$argon2id$v=bad$m=65536,t=1,p=4$c2FsdA$aGFzaA",
	}

	for _, hash := range malformed {
		assert.False(t, hasher.Check("StrongPass123!", hash), "Expected check to fail for hash: %s", hash)
	}
}
