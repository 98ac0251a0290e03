package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCredentialManager implements CredentialManager with bcrypt
type bcryptCredentialManager struct {
	cost int
}

// NewCredentialManager creates a bcrypt-backed credential manager
func NewCredentialManager() CredentialManager {
	return &bcryptCredentialManager{cost: bcrypt.DefaultCost}
}

func (c *bcryptCredentialManager) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), c.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (c *bcryptCredentialManager) Verify(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
