package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenIssuer_SignAndParse(t *testing.T) {
	issuer := NewTokenIssuer("unit-test-secret", 60)

	token, err := issuer.Sign("user-123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := issuer.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("secret-one", 60)
	other := NewTokenIssuer("secret-two", 60)

	token, err := issuer.Sign("user-123")
	assert.NoError(t, err)

	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestTokenIssuer_Expired(t *testing.T) {
	// Нулевой TTL: exp в прошлом уже на момент выпуска
	issuer := NewTokenIssuer("unit-test-secret", 0)

	token, err := issuer.Sign("user-123")
	assert.NoError(t, err)

	_, err = issuer.Parse(token)
	assert.Error(t, err)
}

func TestTokenIssuer_Garbage(t *testing.T) {
	issuer := NewTokenIssuer("unit-test-secret", 60)

	_, err := issuer.Parse("not-a-jwt-at-all")
	assert.Error(t, err)

	_, err = issuer.Parse("")
	assert.Error(t, err)
}
