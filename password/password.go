package password

import (
	"strings"

	"github.com/google/uuid"

	"github.com/cmelgaard/securekit/random"
)

// friendlyCharset is the alphabet for user-friendly passwords: upper-case
// letters and digits, with O and 0 excluded to avoid confusion.
const friendlyCharset = "ABCDEFGHIJKLMNPQRSTUVWXYZ123456789"

// Password is a fluent builder holding an unhashed password value.
// The zero value is an empty password; every method returns the receiver so
// calls can be chained.
type Password struct {
	value string
}

// New creates an empty Password.
func New() *Password {
	return &Password{}
}

// Set replaces the password with the caller's input.
func (p *Password) Set(value string) *Password {
	p.value = value
	return p
}

// GenerateFriendly sets a simple, user-friendly password of 6 to 8
// characters drawn from friendlyCharset.
//
// These passwords are easier to read and enter but weaker than generated
// secrets, and they come from a non-secure random source. Intend them for
// short-lived, disposable credentials only.
func (p *Password) GenerateFriendly() *Password {
	length := random.Between(6, 8)
	p.value = random.StringFrom(friendlyCharset, length)
	return p
}

// GenerateSecure sets a password from a cryptographically strong random
// source, formatted as a UUID.
func (p *Password) GenerateSecure() *Password {
	p.value = uuid.NewString()
	return p
}

// ToUpper converts the password to upper case.
func (p *Password) ToUpper() *Password {
	p.value = strings.ToUpper(p.value)
	return p
}

// ToLower converts the password to lower case.
func (p *Password) ToLower() *Password {
	p.value = strings.ToLower(p.value)
	return p
}

// Hash returns the hashed representation of the password using h.
func (p *Password) Hash(h Hasher) (string, error) {
	return h.Hash(p.value)
}

// String returns the unhashed password value.
func (p *Password) String() string {
	return p.value
}
