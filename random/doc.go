// Package random provides convenience randomness for numbers and strings.
//
// It is backed by math/rand/v2 and is NOT suitable for security purposes:
// never use it for salts, tokens, or keys. Salt generation lives in the
// hashing package and tokens in the password package, both backed by
// crypto/rand.
package random
