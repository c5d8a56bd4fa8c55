package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// BcryptCost matches the cost the existing admin hashes were
	// generated with; changing it only affects newly stored hashes.
	BcryptCost = 12
	// MinPasswordLen is enforced by callers before hashing.
	MinPasswordLen = 8
)

// HashPassword returns a salted bcrypt hash of the plaintext. Two calls
// with the same input produce different hashes.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
