package hashing

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"io"
	"unicode/utf8"

	"github.com/cmelgaard/securekit/errors"
)

// DefaultSaltLength is the salt length in bytes used by GenerateDefaultSalt.
const DefaultSaltLength = 128

// GenerateSalt produces length bytes from the platform secure random source.
// Generate a fresh salt for every credential; reusing a salt across
// plaintexts weakens the protection it exists to provide.
//
// A short or failed read returns an AppError with code
// RANDOM_SOURCE_UNAVAILABLE and no salt: callers must abort the credential
// flow instead of continuing with a zero or predictable value.
func GenerateSalt(length int) ([]byte, error) {
	if length < 1 {
		return nil, errors.InvalidInput("length", "salt length must be a positive number of bytes")
	}
	salt := make([]byte, length)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, errors.RandomSourceUnavailable(err)
	}
	return salt, nil
}

// GenerateDefaultSalt produces a salt of DefaultSaltLength bytes.
func GenerateDefaultSalt() ([]byte, error) {
	return GenerateSalt(DefaultSaltLength)
}

// Hash computes the SHA-256 salted digest of plaintext.
// See HashWithAlgorithm for the digest contract.
func Hash(plaintext string, salt []byte) (string, error) {
	return HashWithAlgorithm(plaintext, salt, AlgorithmSHA256)
}

// HashWithAlgorithm computes digest(salt || plaintext) under the named
// algorithm and returns it as a lowercase hex string, two characters per
// digest byte.
//
// The empty string is valid input and hashes deterministically like any
// other. Plaintext that is not valid UTF-8 returns an ENCODING_FAILURE
// error; an unknown algorithm returns UNSUPPORTED_ALGORITHM.
func HashWithAlgorithm(plaintext string, salt []byte, alg Algorithm) (string, error) {
	digest, err := digestBytes(plaintext, salt, alg)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(digest), nil
}

// ValidateHash reports whether candidate matches a stored SHA-256 digest+salt
// pair. See ValidateHashWithAlgorithm.
func ValidateHash(candidate, storedHash string, salt []byte) (bool, error) {
	return ValidateHashWithAlgorithm(candidate, storedHash, salt, AlgorithmSHA256)
}

// ValidateHashWithAlgorithm recomputes the salted digest of candidate and
// compares it to storedHash in constant time.
//
// A mismatch is a normal false result, never an error; that includes a
// storedHash that is not valid hex or has the wrong length. Errors are
// reserved for the conditions under which the digest itself cannot be
// computed (unsupported algorithm, encoding failure).
func ValidateHashWithAlgorithm(candidate, storedHash string, salt []byte, alg Algorithm) (bool, error) {
	computed, err := digestBytes(candidate, salt, alg)
	if err != nil {
		return false, err
	}
	stored, err := hex.DecodeString(storedHash)
	if err != nil || len(stored) != len(computed) {
		return false, nil
	}
	return subtle.ConstantTimeCompare(computed, stored) == 1, nil
}

// digestBytes computes digest(salt || plaintext) and returns the raw digest.
func digestBytes(plaintext string, salt []byte, alg Algorithm) ([]byte, error) {
	md, ok := newDigest(alg)
	if !ok {
		return nil, errors.UnsupportedAlgorithm(string(alg))
	}
	if !utf8.ValidString(plaintext) {
		return nil, errors.EncodingFailure("plaintext is not valid UTF-8")
	}
	md.Write(salt)
	md.Write([]byte(plaintext))
	return md.Sum(nil), nil
}
