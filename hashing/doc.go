// Package hashing provides salted one-way digests for credential secrets.
//
// It generates cryptographically secure salts, computes lowercase-hex salted
// digests, and verifies candidates against stored digest+salt pairs using a
// constant-time comparison. Every operation is a pure function of its inputs;
// the only external dependency is the platform secure random source used for
// salt generation.
//
// The digest here is a plain salted hash, not a key-derivation function.
// For interactive password storage prefer the password package, which wraps
// bcrypt and argon2id.
//
// # Usage
//
//	salt, err := hashing.GenerateDefaultSalt()
//	digest, err := hashing.Hash("secret123", salt)
//	ok, err := hashing.ValidateHash("secret123", digest, salt)
package hashing
