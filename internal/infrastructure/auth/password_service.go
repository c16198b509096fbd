package auth

import (
	"fmt"

	"github.com/you/profilecms/domain"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implements domain.PasswordService with bcrypt at the
// default cost.
type BcryptHasher struct {
	cost int
}

// NewPasswordService creates a new password service
func NewPasswordService() domain.PasswordService {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash implements domain.PasswordService
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether password matches hashedPassword. A malformed
// stored hash reads as a failed match, never an error.
func (h *BcryptHasher) Verify(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
