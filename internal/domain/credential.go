package domain

import "golang.org/x/crypto/bcrypt"

// Credential is a value object holding a bcrypt hash of a user's password.
// The plaintext never leaves the constructor, and verification is the only
// operation exposed. Storage layers persist the hash, never the password.
type Credential struct {
	hash string
}

// NewCredential hashes the given plaintext password with bcrypt.
// Returns ErrEmptyPassword when the password is empty.
func NewCredential(password string) (Credential, error) {
	if password == "" {
		return Credential{}, ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Credential{}, err
	}
	return Credential{hash: string(hash)}, nil
}

// CredentialFromHash rehydrates a Credential from a previously stored bcrypt
// hash. No validation is performed; a garbage hash simply never verifies.
func CredentialFromHash(hash string) Credential {
	return Credential{hash: hash}
}

// Verify reports whether the given plaintext password matches the stored hash.
func (c Credential) Verify(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.hash), []byte(password)) == nil
}

// Hash returns the stored bcrypt hash for persistence.
func (c Credential) Hash() string {
	return c.hash
}

// IsZero reports whether the credential carries no hash at all, which is the
// case for users registered without a password.
func (c Credential) IsZero() bool {
	return c.hash == ""
}
