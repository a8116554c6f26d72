// Package password provides password creation, hashing, and verification.
//
// It defines a Hasher interface with two implementations:
//   - BcryptHasher: industry-standard bcrypt hashing
//   - Argon2Hasher: modern argon2id hashing (recommended for new projects)
//
// Both embed their salt and parameters in the encoded hash, which makes them
// the right choice for storing interactive login credentials. The plain
// salted digests in the hashing package are a separate code path for callers
// that manage digest and salt storage themselves.
//
// The fluent Password builder mirrors common credential flows:
//
//	hasher := password.NewBcryptHasher()
//	hash, err := password.New().GenerateFriendly().Hash(hasher)
package password
