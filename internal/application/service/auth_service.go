package service

import (
	"github.com/sangkips/tillpoint-api/pkg/apperror"
	"github.com/sangkips/tillpoint-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService authenticates the terminal's cashier. Credentials come from
// configuration; there is no user store on a single-register terminal.
type AuthService struct {
	cashier      string
	passwordHash string
	jwtManager   *utils.JWTManager
}

// NewAuthService creates the auth service for the configured cashier.
// The password hash must be a bcrypt hash.
func NewAuthService(cashier, passwordHash string, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		cashier:      cashier,
		passwordHash: passwordHash,
		jwtManager:   jwtManager,
	}
}

// Login verifies the credentials and issues a session token.
func (s *AuthService) Login(username, password string) (string, error) {
	if username != s.cashier {
		return "", apperror.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", apperror.ErrInvalidCredentials
	}
	return s.jwtManager.GenerateToken(username)
}

// HashPassword produces a bcrypt hash for a plain-text password, used at
// startup when the configuration carries a plain password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
