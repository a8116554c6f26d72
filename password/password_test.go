package password

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewIsEmpty(t *testing.T) {
	if got := New().String(); got != "" {
		t.Errorf("new password should be empty, got %q", got)
	}
}

func TestSet(t *testing.T) {
	p := New().Set("hunter2hunter2")
	if p.String() != "hunter2hunter2" {
		t.Errorf("expected set value, got %q", p.String())
	}
}

func TestGenerateFriendly(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := New().GenerateFriendly().String()
		if len(v) < 6 || len(v) > 8 {
			t.Fatalf("friendly password length %d, want 6-8 (%q)", len(v), v)
		}
		for _, c := range v {
			if !strings.ContainsRune(friendlyCharset, c) {
				t.Fatalf("character %q not in friendly charset (%q)", c, v)
			}
		}
	}
}

func TestGenerateFriendlyExcludesConfusables(t *testing.T) {
	if strings.ContainsAny(friendlyCharset, "O0") {
		t.Error("friendly charset must not contain O or 0")
	}
}

func TestGenerateSecure(t *testing.T) {
	v := New().GenerateSecure().String()
	if _, err := uuid.Parse(v); err != nil {
		t.Errorf("secure password should be a UUID, got %q: %v", v, err)
	}
	if v2 := New().GenerateSecure().String(); v2 == v {
		t.Error("two secure passwords should not be equal")
	}
}

func TestCaseTransforms(t *testing.T) {
	p := New().Set("MiXeD")
	if got := p.ToUpper().String(); got != "MIXED" {
		t.Errorf("ToUpper: got %q", got)
	}
	if got := p.ToLower().String(); got != "mixed" {
		t.Errorf("ToLower: got %q", got)
	}
}

func TestChaining(t *testing.T) {
	v := New().GenerateFriendly().ToLower().String()
	if v != strings.ToLower(v) {
		t.Errorf("chained ToLower should lower-case the generated value, got %q", v)
	}
}

func TestBuilderHash(t *testing.T) {
	hasher := NewBcryptHasher(WithCost(4))
	p := New().Set("correct horse battery staple")
	hash, err := p.Hash(hasher)
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if err := hasher.Verify(p.String(), hash); err != nil {
		t.Errorf("hashed password should verify: %v", err)
	}
}

func TestGenerateToken(t *testing.T) {
	tok := GenerateToken()
	if _, err := uuid.Parse(tok); err != nil {
		t.Errorf("token should be a UUID, got %q: %v", tok, err)
	}
	if GenerateToken() == tok {
		t.Error("two tokens should not be equal")
	}
}

func TestGenerateRandomToken(t *testing.T) {
	tok, err := GenerateRandomToken(32)
	if err != nil {
		t.Fatalf("GenerateRandomToken failed: %v", err)
	}
	if len(tok) != 64 {
		t.Errorf("32 random bytes should hex-encode to 64 characters, got %d", len(tok))
	}
	tok2, _ := GenerateRandomToken(32)
	if tok2 == tok {
		t.Error("two random tokens should not be equal")
	}
}

func TestGenerateRandomTokenInvalidLength(t *testing.T) {
	if _, err := GenerateRandomToken(0); err == nil {
		t.Error("expected error for zero length")
	}
}
