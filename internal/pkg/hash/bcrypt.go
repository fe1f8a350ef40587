// Package hash provides one-way salted password hashing backed by bcrypt.
package hash

import "golang.org/x/crypto/bcrypt"

// MinCost is the lowest bcrypt cost factor accepted for new hashes.
const MinCost = 10

// BcryptHasher hashes and verifies passwords. The zero value is not usable;
// construct with NewBcryptHasher.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given cost factor. Costs below
// MinCost are raised to MinCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < MinCost {
		cost = MinCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash produces a salted, irreversible digest of plain. bcrypt salts per
// call, so two hashes of the same input never match.
func (h *BcryptHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plain matches hashed. The comparison is constant
// time; a malformed hash simply yields false.
func (h *BcryptHasher) Verify(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
