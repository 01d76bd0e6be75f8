package helpers

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// ErrHashing is returned when a digest cannot be produced.
var ErrHashing = errors.New("password hashing failed")

// BcryptHasher hashes and verifies passwords with bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using cost, falling back to bcrypt.DefaultCost
// when cost is outside bcrypt's accepted range.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns a salted digest of plain. Every call uses a fresh salt.
func (h *BcryptHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", errors.Wrap(ErrHashing, err.Error())
	}
	return string(b), nil
}

// Verify compares plain against digest in constant time. It never errors:
// empty input and malformed digests simply do not match.
func (h *BcryptHasher) Verify(plain, digest string) bool {
	if plain == "" || digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
