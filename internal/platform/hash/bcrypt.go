package hash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var _ Hasher = &BcryptHasher{}

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns a salted bcrypt digest of plain. The salt is generated per
// call, so hashing the same input twice yields different digests.
func (h *BcryptHasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt generate from password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plain matches hashed. A mismatch or a malformed
// digest both report false; Verify never fails on bad input.
func (h *BcryptHasher) Verify(plain, hashed string) (bool, error) {
	// A mismatch and a malformed digest both read as a failed match, so the
	// auth gate stays a single undifferentiated rejection.
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); err != nil {
		return false, nil
	}
	return true, nil
}
