// Package hasher provides a password hasher implementation utilising bcrypt.
package hasher

import (
	"log/slog"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher hashes and verifies passwords with bcrypt.
// bcrypt salts every digest, so equal passwords produce different digests.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher. Costs outside bcrypt's valid range
// fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// CostFromEnv reads BCRYPT_COST, returning bcrypt.DefaultCost when unset or malformed.
func CostFromEnv() int {
	raw := os.Getenv("BCRYPT_COST")
	if raw == "" {
		return bcrypt.DefaultCost
	}
	cost, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("invalid BCRYPT_COST, using default", "value", raw, "error", err)
		return bcrypt.DefaultCost
	}
	return cost
}

// Hash returns the bcrypt digest of password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare returns nil if password matches digest.
func (h *BcryptHasher) Compare(password, digest string) error {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
}
