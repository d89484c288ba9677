package jwtauth

import (
	"ecom/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// BcryptPasswordHasher implements ports.PasswordHasher with bcrypt.
type BcryptPasswordHasher struct {
	cost int
}

// NewBcryptPasswordHasher creates a hasher with the default bcrypt cost.
func NewBcryptPasswordHasher() *BcryptPasswordHasher {
	return &BcryptPasswordHasher{cost: bcrypt.DefaultCost}
}

// Hash derives a bcrypt hash from the plaintext password.
func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errs.NewValueIsRequiredError("password")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

// Compare checks the plaintext password against a stored hash.
func (h *BcryptPasswordHasher) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
