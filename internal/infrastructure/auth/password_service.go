package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/elifesajna/self-employ-final/domain"
)

// BcryptPasswordService implements domain.PasswordService
type BcryptPasswordService struct {
	cost int
}

// NewPasswordService creates a bcrypt-backed password service.
func NewPasswordService() domain.PasswordService {
	return &BcryptPasswordService{cost: bcrypt.DefaultCost}
}

// Hash implements domain.PasswordService
func (p *BcryptPasswordService) Hash(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// Verify implements domain.PasswordService
func (p *BcryptPasswordService) Verify(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
