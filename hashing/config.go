package hashing

import (
	"github.com/cmelgaard/securekit/errors"
)

// Config configures the salted-hashing service.
// Loadable from YAML/env via mapstructure tags.
type Config struct {
	// Algorithm selects the digest algorithm (default: "SHA-256").
	Algorithm Algorithm `mapstructure:"algorithm"`

	// SaltLength is the generated salt length in bytes (default: 128).
	SaltLength int `mapstructure:"salt_length"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Algorithm == "" {
		c.Algorithm = AlgorithmSHA256
	}
	if c.SaltLength == 0 {
		c.SaltLength = DefaultSaltLength
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if !IsSupported(c.Algorithm) {
		return errors.UnsupportedAlgorithm(string(c.Algorithm))
	}
	if c.SaltLength < 1 {
		return errors.InvalidInput("salt_length", "must be a positive number of bytes")
	}
	return nil
}

// Service is a salted hasher bound to a fixed algorithm and salt length.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	algorithm  Algorithm
	saltLength int
}

// NewService creates a Service from configuration.
// This is the config-driven factory — use it when loading from YAML/env.
func NewService(cfg Config) (*Service, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Service{algorithm: cfg.Algorithm, saltLength: cfg.SaltLength}, nil
}

// Algorithm returns the configured digest algorithm.
func (s *Service) Algorithm() Algorithm { return s.algorithm }

// GenerateSalt produces a salt of the configured length.
func (s *Service) GenerateSalt() ([]byte, error) {
	return GenerateSalt(s.saltLength)
}

// Hash computes the salted digest of plaintext under the configured algorithm.
func (s *Service) Hash(plaintext string, salt []byte) (string, error) {
	return HashWithAlgorithm(plaintext, salt, s.algorithm)
}

// ValidateHash reports whether candidate matches the stored digest+salt pair
// under the configured algorithm.
func (s *Service) ValidateHash(candidate, storedHash string, salt []byte) (bool, error) {
	return ValidateHashWithAlgorithm(candidate, storedHash, salt, s.algorithm)
}
