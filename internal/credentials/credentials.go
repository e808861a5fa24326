// Package credentials wraps one-way password hashing. Hashes are
// salted per call, so the same password never hashes to the same
// value twice; comparisons must go through Verify.
package credentials

import "golang.org/x/crypto/bcrypt"

// Hash returns the bcrypt hash of a password.
func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether a plaintext password matches a stored hash.
func Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
