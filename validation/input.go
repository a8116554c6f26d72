package validation

import (
	"strings"
)

// IsBlank reports whether s carries no information: empty or only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsEmptyBytes reports whether b carries no information.
func IsEmptyBytes(b []byte) bool {
	return len(b) == 0
}

// IsValidPhoneNumber reports whether s looks like a phone number: an
// optional leading '+' (country code) followed by digits only.
func IsValidPhoneNumber(s string) bool {
	if IsBlank(s) {
		return false
	}
	digits := strings.TrimPrefix(s, "+")
	if digits == "" {
		return false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// IsValidEmail reports whether s has a plausible email shape: exactly one
// '@', a non-empty local part, a dotted domain of reasonable length, no
// leading, trailing, or repeated dots, and no spaces.
func IsValidEmail(s string) bool {
	if IsBlank(s) {
		return false
	}
	local, domain, ok := strings.Cut(s, "@")
	if !ok || strings.Contains(domain, "@") {
		return false
	}
	if local == "" {
		return false
	}
	// The shortest accepted domain is four characters, e.g. "a.io".
	if !strings.Contains(domain, ".") || len(domain) <= 3 {
		return false
	}
	for _, part := range []string{local, domain} {
		if strings.HasPrefix(part, ".") || strings.HasSuffix(part, ".") {
			return false
		}
		if strings.Contains(part, "..") || strings.Contains(part, " ") {
			return false
		}
	}
	return true
}
