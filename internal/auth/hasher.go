package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher abstracts password hashing so tests can substitute a
// deterministic fake.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// BcryptHasher hashes passwords with bcrypt. Every call salts independently.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher with the default work factor (10).
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash returns the salted bcrypt hash of the password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare checks the password against a stored hash. bcrypt's comparison is
// constant-time over the digest.
func (h *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
