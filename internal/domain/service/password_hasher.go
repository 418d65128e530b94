// Package service declares the capabilities the usecases consume: credential
// hashing, token signing, code delivery, revocation and time.
package service

// PasswordHasher turns account passwords into stored digests and back-checks them.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check reports whether password produces hash. Malformed hashes never match.
	Check(password, hash string) bool
}

// PasswordPolicy is the configurable acceptance rule for new passwords.
type PasswordPolicy interface {
	// Validate returns nil when password is acceptable.
	Validate(password string) error
}
