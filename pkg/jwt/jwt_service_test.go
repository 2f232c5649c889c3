package jwt

import (
	"testing"
	"time"

	"foodbridge-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	svc := NewJWTService("secret")
	token := svc.GenerateTokenUser("42", domain.RoleOrganization)
	require.NotEmpty(t, token)

	id, role, err := svc.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", id)
	assert.Equal(t, domain.RoleOrganization, role)
}

func TestGetUserIDByToken_WrongSecret(t *testing.T) {
	token := NewJWTService("secret").GenerateTokenUser("42", domain.RoleBuyer)

	_, _, err := NewJWTService("other").GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetUserIDByToken_Expired(t *testing.T) {
	svc := &jwtService{
		secretKey: "secret",
		issuer:    "FOODBRIDGE",
		now:       func() time.Time { return time.Now().Add(-3 * time.Hour) },
	}
	token := svc.GenerateTokenUser("42", domain.RoleBuyer)

	_, _, err := svc.GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestGetUserIDByToken_Garbage(t *testing.T) {
	_, _, err := NewJWTService("secret").GetUserIDByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
