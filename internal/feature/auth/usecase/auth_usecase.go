// Package usecase implements the admin login logic.
//
// There are no end-user accounts: a single admin credential is configured
// through the environment and guards the stored-record endpoints.
package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"os"

	"golang.org/x/crypto/bcrypt"

	jwtmw "github.com/MiranSiddique/FLORO/internal/platform/jwt"
)

var (
	// ErrInvalidCredentials is returned when email or password is wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotConfigured is returned when no admin credential is configured.
	ErrNotConfigured = errors.New("admin login is not configured")
)

// Config holds the admin credential.
type Config struct {
	Email        string // admin email
	PasswordHash string // bcrypt hash of the admin password
}

// LoadConfig loads the admin credential from environment variables.
func LoadConfig() Config {
	return Config{
		Email:        os.Getenv("ADMIN_EMAIL"),
		PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
}

// authUsecase authenticates the admin and issues tokens.
type authUsecase struct {
	cfg    Config
	tokens jwtmw.Generator
}

// NewAuthUsecase creates a new authUsecase.
func NewAuthUsecase(cfg Config, tokens jwtmw.Generator) *authUsecase {
	return &authUsecase{cfg: cfg, tokens: tokens}
}

// Login verifies the admin credential and returns a signed JWT on success.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if u.cfg.Email == "" || u.cfg.PasswordHash == "" {
		return "", ErrNotConfigured
	}
	if subtle.ConstantTimeCompare([]byte(email), []byte(u.cfg.Email)) != 1 {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.cfg.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return u.tokens.GenerateToken(email)
}
