package password

import (
	stderrors "errors"
)

// ErrMismatch is returned by Verify when the password does not match the
// stored hash. Callers should treat it as a normal authentication failure,
// not a system error.
var ErrMismatch = stderrors.New("password: does not match stored hash")

// Hasher defines the interface for password hashing and verification.
// Implementations embed salt and parameters in the encoded hash.
type Hasher interface {
	// Hash returns a hashed representation of the password.
	Hash(password string) (string, error)

	// Verify checks if a password matches the given hash.
	// Returns nil on a match, ErrMismatch on a mismatch, and another error
	// when the hash cannot be parsed.
	Verify(password, hash string) error
}

// DefaultMinLength is the minimum accepted password length when no policy
// is configured.
const DefaultMinLength = 8
