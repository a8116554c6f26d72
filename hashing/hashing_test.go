package hashing

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/cmelgaard/securekit/errors"
)

var lowerHex = regexp.MustCompile(`^[0-9a-f]+$`)

func TestGenerateSaltLength(t *testing.T) {
	for _, n := range []int{1, 16, 128, 4096} {
		salt, err := GenerateSalt(n)
		if err != nil {
			t.Fatalf("GenerateSalt(%d) failed: %v", n, err)
		}
		if len(salt) != n {
			t.Errorf("GenerateSalt(%d) returned %d bytes", n, len(salt))
		}
	}
}

func TestGenerateSaltInvalidLength(t *testing.T) {
	for _, n := range []int{0, -1, -128} {
		salt, err := GenerateSalt(n)
		if err == nil {
			t.Fatalf("GenerateSalt(%d) should fail", n)
		}
		if salt != nil {
			t.Errorf("GenerateSalt(%d) returned a salt alongside an error", n)
		}
		if errors.CodeOf(err) != errors.ErrCodeInvalidInput {
			t.Errorf("expected INVALID_INPUT, got %s", errors.CodeOf(err))
		}
	}
}

func TestGenerateSaltUnique(t *testing.T) {
	s1, err := GenerateSalt(32)
	if err != nil {
		t.Fatalf("GenerateSalt failed: %v", err)
	}
	s2, err := GenerateSalt(32)
	if err != nil {
		t.Fatalf("GenerateSalt failed: %v", err)
	}
	if bytes.Equal(s1, s2) {
		t.Error("two salts from the secure source should not be equal")
	}
}

func TestGenerateDefaultSalt(t *testing.T) {
	salt, err := GenerateDefaultSalt()
	if err != nil {
		t.Fatalf("GenerateDefaultSalt failed: %v", err)
	}
	if len(salt) != DefaultSaltLength {
		t.Errorf("expected %d bytes, got %d", DefaultSaltLength, len(salt))
	}
}

func TestHashKnownVectors(t *testing.T) {
	salt := []byte("fixed-salt")

	tests := []struct {
		name      string
		plaintext string
		alg       Algorithm
		want      string
	}{
		{"sha256", "secret123", AlgorithmSHA256, "29edfeb2543b747b0401eab0a9f80555d01e954ab94970ba386f32d69840f944"},
		{"sha256 empty plaintext", "", AlgorithmSHA256, "c6851feb4c0ff8c8af8bcd9de04b27cc7d075c9497cdf5488daceb571bc93ef4"},
		{"sha512", "secret123", AlgorithmSHA512, "526651c99c291c99c13bbb0686abad42c4d9b201688cebbc25dda85a217a5fadd0c5ce4ce961fb28b18b4f8896978aad9d9a143130fd5ea3750827f6399c2f61"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := HashWithAlgorithm(tc.plaintext, salt, tc.alg)
			if err != nil {
				t.Fatalf("HashWithAlgorithm failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestHashDeterministic(t *testing.T) {
	salt, _ := GenerateSalt(128)
	h1, err := Hash("secret123", salt)
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	h2, err := Hash("secret123", salt)
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if h1 != h2 {
		t.Error("same plaintext and salt must produce the same digest")
	}
}

func TestHashOutputShape(t *testing.T) {
	salt, _ := GenerateSalt(128)
	h, err := Hash("secret123", salt)
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if len(h) != 64 {
		t.Errorf("SHA-256 digest should be 64 hex characters, got %d", len(h))
	}
	if !lowerHex.MatchString(h) {
		t.Errorf("digest should be lowercase hex, got %q", h)
	}
}

func TestHashDistinctInputs(t *testing.T) {
	salt, _ := GenerateSalt(128)
	h1, _ := Hash("secret123", salt)
	h2, _ := Hash("secret124", salt)
	if h1 == h2 {
		t.Error("different plaintexts under the same salt should not collide")
	}

	other, _ := GenerateSalt(128)
	h3, _ := Hash("secret123", other)
	if h1 == h3 {
		t.Error("different salts for the same plaintext should not collide")
	}
}

func TestHashEmptyPlaintext(t *testing.T) {
	salt, _ := GenerateSalt(128)
	h, err := Hash("", salt)
	if err != nil {
		t.Fatalf("empty plaintext must be valid input, got error: %v", err)
	}
	if len(h) != 64 || !lowerHex.MatchString(h) {
		t.Errorf("expected 64-character lowercase hex digest, got %q", h)
	}
	h2, _ := Hash("", salt)
	if h != h2 {
		t.Error("empty plaintext must hash deterministically")
	}
}

func TestHashUnsupportedAlgorithm(t *testing.T) {
	salt, _ := GenerateSalt(16)
	h, err := HashWithAlgorithm("secret123", salt, "MD2-FAKE")
	if err == nil {
		t.Fatal("expected error for unsupported algorithm")
	}
	if h != "" {
		t.Errorf("failed hash must not return a partial result, got %q", h)
	}
	if errors.CodeOf(err) != errors.ErrCodeUnsupportedAlgorithm {
		t.Errorf("expected UNSUPPORTED_ALGORITHM, got %s", errors.CodeOf(err))
	}
}

func TestHashInvalidUTF8(t *testing.T) {
	salt, _ := GenerateSalt(16)
	_, err := Hash(string([]byte{0xff, 0xfe, 0xfd}), salt)
	if err == nil {
		t.Fatal("expected error for invalid UTF-8 plaintext")
	}
	if errors.CodeOf(err) != errors.ErrCodeEncodingFailure {
		t.Errorf("expected ENCODING_FAILURE, got %s", errors.CodeOf(err))
	}
}

func TestValidateHashRoundTrip(t *testing.T) {
	salt, err := GenerateSalt(128)
	if err != nil {
		t.Fatalf("GenerateSalt failed: %v", err)
	}
	h, err := Hash("secret123", salt)
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	ok, err := ValidateHash("secret123", h, salt)
	if err != nil {
		t.Fatalf("ValidateHash failed: %v", err)
	}
	if !ok {
		t.Error("correct candidate should validate")
	}

	ok, err = ValidateHash("wrongpass", h, salt)
	if err != nil {
		t.Fatalf("ValidateHash failed: %v", err)
	}
	if ok {
		t.Error("wrong candidate should not validate")
	}
}

func TestValidateHashWrongSalt(t *testing.T) {
	salt, _ := GenerateSalt(128)
	other, _ := GenerateSalt(128)
	h, _ := Hash("secret123", salt)

	ok, err := ValidateHash("secret123", h, other)
	if err != nil {
		t.Fatalf("ValidateHash failed: %v", err)
	}
	if ok {
		t.Error("validation with the wrong salt should fail")
	}
}

func TestValidateHashMalformedStored(t *testing.T) {
	salt, _ := GenerateSalt(16)

	tests := []struct {
		name   string
		stored string
	}{
		{"not hex", "zzzz-not-hex"},
		{"wrong length", "deadbeef"},
		{"empty", ""},
		{"uppercase of wrong value", strings.Repeat("AB", 32)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := ValidateHash("secret123", tc.stored, salt)
			if err != nil {
				t.Fatalf("malformed stored hash must be a mismatch, not an error: %v", err)
			}
			if ok {
				t.Error("malformed stored hash should never validate")
			}
		})
	}
}

func TestValidateHashCaseInsensitiveHex(t *testing.T) {
	// Stored digests are lowercase by contract, but an uppercase copy of the
	// same digest decodes to the same bytes and still verifies.
	salt, _ := GenerateSalt(16)
	h, _ := Hash("secret123", salt)
	ok, err := ValidateHash("secret123", strings.ToUpper(h), salt)
	if err != nil {
		t.Fatalf("ValidateHash failed: %v", err)
	}
	if !ok {
		t.Error("uppercase hex of the correct digest should validate")
	}
}

func TestValidateHashUnsupportedAlgorithm(t *testing.T) {
	salt, _ := GenerateSalt(16)
	_, err := ValidateHashWithAlgorithm("secret123", "00", salt, "MD2-FAKE")
	if err == nil {
		t.Fatal("expected error for unsupported algorithm")
	}
	if errors.CodeOf(err) != errors.ErrCodeUnsupportedAlgorithm {
		t.Errorf("expected UNSUPPORTED_ALGORITHM, got %s", errors.CodeOf(err))
	}
}

func TestAllAlgorithmsRoundTrip(t *testing.T) {
	salt, _ := GenerateSalt(32)
	for _, alg := range SupportedAlgorithms() {
		t.Run(string(alg), func(t *testing.T) {
			h, err := HashWithAlgorithm("secret123", salt, alg)
			if err != nil {
				t.Fatalf("HashWithAlgorithm failed: %v", err)
			}
			if !lowerHex.MatchString(h) {
				t.Errorf("digest should be lowercase hex, got %q", h)
			}
			ok, err := ValidateHashWithAlgorithm("secret123", h, salt, alg)
			if err != nil {
				t.Fatalf("ValidateHashWithAlgorithm failed: %v", err)
			}
			if !ok {
				t.Error("round trip should validate")
			}
		})
	}
}

func TestIsSupported(t *testing.T) {
	if !IsSupported(AlgorithmSHA256) {
		t.Error("SHA-256 must be supported")
	}
	if IsSupported("MD2-FAKE") {
		t.Error("MD2-FAKE must not be supported")
	}
}

func TestConcurrentHashing(t *testing.T) {
	salt, _ := GenerateSalt(64)
	want, _ := Hash("secret123", salt)

	done := make(chan error, 16)
	for i := 0; i < 16; i++ {
		go func() {
			for j := 0; j < 50; j++ {
				if _, err := GenerateSalt(32); err != nil {
					done <- err
					return
				}
				h, err := Hash("secret123", salt)
				if err != nil {
					done <- err
					return
				}
				if h != want {
					done <- fmt.Errorf("digest changed under concurrency: %s", h)
					return
				}
			}
			done <- nil
		}()
	}
	for i := 0; i < 16; i++ {
		if err := <-done; err != nil {
			t.Fatalf("concurrent hashing failed: %v", err)
		}
	}
}
