package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	repo := New(bcrypt.MinCost)

	hash, err := repo.HashPassword("qwerty")

	require.NoError(t, err)
	assert.NotEqual(t, "qwerty", hash)
	assert.True(t, repo.CheckPasswordHash("qwerty", hash))
}

func TestHashPassword_Empty(t *testing.T) {
	repo := New(bcrypt.MinCost)

	_, err := repo.HashPassword("")

	assert.Error(t, err)
}

func TestHashPassword_TooLong(t *testing.T) {
	repo := New(bcrypt.MinCost)

	_, err := repo.HashPassword(strings.Repeat("a", 65))

	assert.Error(t, err)
}

func TestHashPassword_BadCost(t *testing.T) {
	repo := New(bcrypt.MaxCost + 1)

	_, err := repo.HashPassword("qwerty")

	require.Error(t, err)
	// the bcrypt error survives the wrap
	assert.ErrorAs(t, err, new(bcrypt.InvalidCostError))
}

func TestCheckPasswordHash_Wrong(t *testing.T) {
	repo := New(bcrypt.MinCost)

	hash, err := repo.HashPassword("qwerty")
	require.NoError(t, err)

	assert.False(t, repo.CheckPasswordHash("nope", hash))
	assert.False(t, repo.CheckPasswordHash("qwerty", "not-a-hash"))
}
