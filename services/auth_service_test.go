package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	auth := NewAuthService("test-secret")

	hash, err := auth.HashPassword("Bagr123")
	require.NoError(t, err)
	assert.NotEqual(t, "Bagr123", hash)

	assert.True(t, auth.CheckPassword("Bagr123", hash))
	assert.False(t, auth.CheckPassword("bagr123", hash))
	assert.False(t, auth.CheckPassword("", hash))
}

func TestHashPasswordLongSecrets(t *testing.T) {
	auth := NewAuthService("test-secret")

	// bcrypt alone truncates input at 72 bytes; the digest step must keep
	// secrets that share a long prefix distinguishable.
	prefix := strings.Repeat("a", 80)
	hash, err := auth.HashPassword(prefix + "x")
	require.NoError(t, err)

	assert.True(t, auth.CheckPassword(prefix+"x", hash))
	assert.False(t, auth.CheckPassword(prefix+"y", hash))
}

func TestIssueAndValidateToken(t *testing.T) {
	auth := NewAuthService("test-secret")

	token, err := auth.IssueToken(AdminSubject)
	require.NoError(t, err)

	subject, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, AdminSubject, subject)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	auth := NewAuthService("test-secret")

	_, err := auth.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = auth.ValidateToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	issuer := NewAuthService("key-one")
	validator := NewAuthService("key-two")

	token, err := issuer.IssueToken(AdminSubject)
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	auth := NewAuthService("test-secret")
	auth.tokenTTL = -time.Minute

	token, err := auth.IssueToken(AdminSubject)
	require.NoError(t, err)

	_, err = auth.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
