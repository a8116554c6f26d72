package password

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/google/uuid"

	"github.com/cmelgaard/securekit/errors"
)

// GenerateToken creates a unique, unpredictable token formatted as a UUID.
// Common usage: session identifiers, one-time links.
func GenerateToken() string {
	return uuid.NewString()
}

// GenerateRandomToken creates a cryptographically secure random token of the
// specified byte length, returned as a hex-encoded string.
// Common usage: API keys, email verification tokens.
func GenerateRandomToken(length int) (string, error) {
	if length < 1 {
		return "", errors.InvalidInput("length", "token length must be a positive number of bytes")
	}
	b := make([]byte, length)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return "", errors.RandomSourceUnavailable(err)
	}
	return hex.EncodeToString(b), nil
}
