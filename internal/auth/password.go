package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the hard input ceiling of the bcrypt primitive. Longer
// passwords are rejected up front instead of being silently truncated.
const MaxPasswordBytes = 72

// Hasher produces and verifies salted one-way password hashes. It is
// stateless per call, so a password-change flow can reuse it as is.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost. Costs outside the
// valid bcrypt range fall back to the library default.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt hash of plain. The output embeds a random per-call
// salt, so hashing the same password twice yields different strings that
// both verify. Returns ErrPasswordTooLong when plain exceeds MaxPasswordBytes.
func (h *Hasher) Hash(plain string) (string, error) {
	if len(plain) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plain matches the stored bcrypt hash. A mismatch is
// (false, nil), never an error. ErrMalformedHash is returned only when the
// stored value is not a bcrypt string, which indicates data corruption.
func (h *Hasher) Verify(plain, hash string) (bool, error) {
	if len(plain) > MaxPasswordBytes {
		return false, ErrPasswordTooLong
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, ErrMalformedHash
	}
}
