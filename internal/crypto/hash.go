package crypto

import (
	"golang.org/x/crypto/bcrypt"
)

// MinHashCost is the lowest bcrypt work factor accepted for password storage.
const MinHashCost = 10

// HashPassword hashes a password with bcrypt using the given work factor.
// Costs below MinHashCost are raised to MinHashCost.
func HashPassword(password string, cost int) (string, error) {
	if cost < MinHashCost {
		cost = MinHashCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// VerifyPassword reports whether a password matches the given bcrypt hash.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
