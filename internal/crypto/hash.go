package crypto

import (
	"golang.org/x/crypto/bcrypt"
)

// bcrypt only considers the first 72 bytes of input. Longer passwords
// are truncated rather than rejected, so hashing succeeds for any
// string, matching the truncating behavior of common bcrypt bindings.
const maxPasswordBytes = 72

// HashPassword hashes a password using bcrypt with the default cost.
// bcrypt generates a fresh salt per call, so two hashes of the same
// password differ.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(passwordBytes(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether a password matches the given bcrypt hash.
// Malformed hashes are treated as a non-match rather than an error.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), passwordBytes(password)) == nil
}

func passwordBytes(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}
