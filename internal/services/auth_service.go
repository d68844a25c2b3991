package services

import (
	"crypto/subtle"
	"os"
	"time"

	"bukutamu/pkg/utils"
)

const adminTokenTTL = 24 * time.Hour

type AuthServiceInterface interface {
	Login(password string) (string, error)
}

// AuthService gates the reception dashboard behind the single admin
// password. ADMIN_PASSWORD_HASH (bcrypt) wins when present; ADMIN_PASSWORD
// is the plain dev fallback.
type AuthService struct {
	passwordHash  string
	plainPassword string
}

func NewAuthService() AuthServiceInterface {
	return &AuthService{
		passwordHash:  os.Getenv("ADMIN_PASSWORD_HASH"),
		plainPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}

func (a *AuthService) Login(password string) (string, error) {
	if !a.matches(password) {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken("admin", adminTokenTTL)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}
	return token, nil
}

func (a *AuthService) matches(password string) bool {
	if a.passwordHash != "" {
		return utils.ComparePasswords(a.passwordHash, password) == nil
	}
	if a.plainPassword == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a.plainPassword), []byte(password)) == 1
}
