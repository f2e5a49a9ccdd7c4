// Package password hashes and verifies user passwords with bcrypt.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// maxLen caps the accepted password length. bcrypt truncates input at 72
// bytes, so anything longer would silently collide.
const maxLen = 64

type Repository struct {
	cost int
}

// New returns a hasher using the given bcrypt cost.
func New(cost int) *Repository {
	return &Repository{
		cost: cost,
	}
}

// HashPassword returns the bcrypt hash of the given password. Empty
// passwords and passwords longer than maxLen are rejected.
func (r *Repository) HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password is required")
	}
	if len(password) > maxLen {
		return "", fmt.Errorf("password too long, max %d characters", maxLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), r.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hash), nil
}

// CheckPasswordHash reports whether password matches the stored hash.
func (r *Repository) CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
