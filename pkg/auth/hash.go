package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var ErrEmptyPassword = errors.New("password cannot be empty")

// HashServiceInterface hashes member passwords at registration and checks
// them at login.
type HashServiceInterface interface {
	HashPassword(password string) (string, error)
	ComparePassword(hashedPassword, password string) bool
}

// HashService hashes passwords with bcrypt at the default cost.
type HashService struct{}

// HashPassword rejects empty passwords before hashing; an empty string would
// otherwise hash and verify like any other value.
func (s *HashService) HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("can't hash password: %w", err)
	}
	return string(hash), nil
}

// ComparePassword reports whether the password matches the stored hash. It
// tells the caller nothing about why a mismatch failed.
func (s *HashService) ComparePassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
