package password

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/cmelgaard/securekit/errors"
)

// BcryptHasher implements Hasher using bcrypt.
type BcryptHasher struct {
	cost      int
	minLength int
}

// BcryptOption configures the bcrypt hasher.
type BcryptOption func(*BcryptHasher)

// WithCost sets the bcrypt cost parameter (default: 12, range: 4-31).
func WithCost(cost int) BcryptOption {
	return func(h *BcryptHasher) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			h.cost = cost
		}
	}
}

// WithBcryptMinLength sets the minimum accepted password length.
func WithBcryptMinLength(n int) BcryptOption {
	return func(h *BcryptHasher) {
		if n >= 1 {
			h.minLength = n
		}
	}
}

// NewBcryptHasher creates a bcrypt-based password hasher.
func NewBcryptHasher(opts ...BcryptOption) *BcryptHasher {
	h := &BcryptHasher{cost: 12, minLength: DefaultMinLength}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	if len(password) < h.minLength {
		return "", errors.WeakPassword("shorter than the configured minimum length")
	}
	// bcrypt truncates input beyond 72 bytes; reject instead of truncating.
	if len(password) > 72 {
		return "", errors.WeakPassword("longer than 72 bytes, the bcrypt limit")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Internal(err)
	}
	return string(hash), nil
}

func (h *BcryptHasher) Verify(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrMismatch
	}
	return nil
}
