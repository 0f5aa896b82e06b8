package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

// maxPasswordBytes is bcrypt's input limit
const maxPasswordBytes = 72

// BcryptHasher implements domain.PasswordService
type BcryptHasher struct {
	cost int
}

// NewPasswordService returns a bcrypt hasher. Costs outside bcrypt's
// accepted range fall back to bcrypt.DefaultCost.
func NewPasswordService(cost int) domain.PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash implements domain.PasswordService
func (b *BcryptHasher) Hash(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", domain.NewValidationError(fmt.Sprintf("password must be at most %d bytes", maxPasswordBytes))
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}

// Verify implements domain.PasswordService. Malformed hashes never match.
func (b *BcryptHasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
