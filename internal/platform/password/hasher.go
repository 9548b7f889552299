// Package password provides one-way password hashing and strength evaluation.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DummyDigest is a bcrypt digest of a throwaway value. Login flows compare
// against it when the requested user does not exist, so that the bcrypt work
// happens on every attempt regardless of whether the username is known.
const DummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Hasher performs salted one-way hashing of plaintext passwords.
// Every call to Hash produces a distinct digest for the same input; digests
// must only be compared through Verify, never for equality.
type Hasher struct {
	cost int
}

// NewHasher creates a bcrypt-backed Hasher.
// A cost outside bcrypt's valid range falls back to bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt digest of plaintext with a fresh random salt.
func (h *Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the given bcrypt digest.
func (h *Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
