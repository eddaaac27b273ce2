package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the bcrypt work factor for stored credentials. Login is
// interactive-only, so the default cost is plenty.
const passwordHashCost = bcrypt.DefaultCost

// HashPassword hashes a plaintext password for storage on the user record.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	return string(hash), err
}

// CheckPasswordHash reports whether the plaintext password matches the stored
// bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
