package hashing

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"sort"

	"golang.org/x/crypto/sha3"
)

// Algorithm names a supported one-way digest algorithm.
type Algorithm string

const (
	// AlgorithmSHA256 is the default digest algorithm.
	AlgorithmSHA256 Algorithm = "SHA-256"

	AlgorithmSHA1   Algorithm = "SHA-1"
	AlgorithmSHA384 Algorithm = "SHA-384"
	AlgorithmSHA512 Algorithm = "SHA-512"

	// AlgorithmMD5 is kept for verifying digests produced by legacy systems.
	// Do not use it for new credentials.
	AlgorithmMD5 Algorithm = "MD5"

	AlgorithmSHA3256 Algorithm = "SHA3-256"
	AlgorithmSHA3512 Algorithm = "SHA3-512"
)

var digests = map[Algorithm]func() hash.Hash{
	AlgorithmSHA256:  sha256.New,
	AlgorithmSHA1:    sha1.New,
	AlgorithmSHA384:  sha512.New384,
	AlgorithmSHA512:  sha512.New,
	AlgorithmMD5:     md5.New,
	AlgorithmSHA3256: sha3.New256,
	AlgorithmSHA3512: sha3.New512,
}

// newDigest returns a fresh digest for the named algorithm, or false when the
// algorithm is unknown.
func newDigest(alg Algorithm) (hash.Hash, bool) {
	ctor, ok := digests[alg]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// IsSupported reports whether the named algorithm is available.
func IsSupported(alg Algorithm) bool {
	_, ok := digests[alg]
	return ok
}

// SupportedAlgorithms returns the names of all available digest algorithms
// in sorted order.
func SupportedAlgorithms() []Algorithm {
	names := make([]Algorithm, 0, len(digests))
	for alg := range digests {
		names = append(names, alg)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
