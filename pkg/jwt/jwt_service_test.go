package jwt

import (
	"FreshKeep-Backend/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateToken("uid-1", "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	uid, email, err := service.GetClaimsByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", uid)
	assert.Equal(t, "alice@example.com", email)
}

func TestTokenSignedWithDifferentSecret(t *testing.T) {
	issuer := NewJWTService("secret-a")
	verifier := NewJWTService("secret-b")

	token, err := issuer.GenerateToken("uid-1", "alice@example.com")
	require.NoError(t, err)

	_, _, err = verifier.GetClaimsByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGarbageToken(t *testing.T) {
	service := NewJWTService("test-secret")

	_, _, err := service.GetClaimsByToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
