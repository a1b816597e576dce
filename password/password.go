package password

import (
	"crypto/subtle"
	"strings"
)

// Hasher converts a raw password into its stored form and verifies a raw
// password against one.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, stored string) (bool, error)
}

// Plaintext is the legacy scheme: the stored form is the password
// itself. Comparison is constant-time.
type Plaintext struct{}

// Hash returns the password unchanged.
func (Plaintext) Hash(password string) (string, error) {
	return password, nil
}

// Verify compares password against the stored cleartext in constant
// time.
func (Plaintext) Verify(password, stored string) (bool, error) {
	return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1, nil
}

// Verify checks password against a stored credential of either scheme:
// PHC-prefixed values verify as argon2id, anything else compares as
// cleartext.
func Verify(password, stored string) (bool, error) {
	if strings.HasPrefix(stored, "$"+algorithmID+"$") {
		return (&Argon2{}).Verify(password, stored)
	}
	return Plaintext{}.Verify(password, stored)
}
