package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bukutamu/pkg/utils"
)

func TestLoginWithPlainPassword(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "rahasia123")
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	svc := NewAuthService()

	token, err := svc.Login("rahasia123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "rahasia123")
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	svc := NewAuthService()

	_, err := svc.Login("salah")
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginPrefersBcryptHash(t *testing.T) {
	hash, err := utils.HashPassword("rahasia123")
	require.NoError(t, err)
	t.Setenv("ADMIN_PASSWORD_HASH", hash)
	t.Setenv("ADMIN_PASSWORD", "something-else")
	svc := NewAuthService()

	_, err = svc.Login("rahasia123")
	assert.NoError(t, err)

	_, err = svc.Login("something-else")
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginNoPasswordConfigured(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	svc := NewAuthService()

	_, err := svc.Login("")
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}
