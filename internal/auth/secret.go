package auth

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrSecretMismatch is returned when a presented secret does not match its hash.
var ErrSecretMismatch = errors.New("secret does not match")

// NewSecret returns a random opaque secret suitable for links sent to customers.
func NewSecret() string {
	return uuid.NewString()
}

// HashSecret hashes a secret for storage.
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(hash), nil
}

// CompareSecret checks secret against a hash produced by HashSecret.
func CompareSecret(hash, secret string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)); err != nil {
		return ErrSecretMismatch
	}
	return nil
}
