package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndValidate(t *testing.T) {
	tokens := NewTokenService("test-secret")

	token, err := tokens.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := tokens.Validate(token)
	require.NoError(t, err)
	require.Equal(t, uint64(42), userID)
}

func TestTokenService_Expired(t *testing.T) {
	tokens := NewTokenService("test-secret")
	tokens.lifetime = -time.Hour

	token, err := tokens.Issue(42)
	require.NoError(t, err)

	_, err = tokens.Validate(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_Tampered(t *testing.T) {
	tokens := NewTokenService("test-secret")

	token, err := tokens.Issue(42)
	require.NoError(t, err)

	// Flip a character in the signature segment
	tampered := token[:len(token)-2] + "xx"
	_, err = tokens.Validate(tampered)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_WrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a").Issue(42)
	require.NoError(t, err)

	_, err = NewTokenService("secret-b").Validate(token)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_Garbage(t *testing.T) {
	tokens := NewTokenService("test-secret")

	_, err := tokens.Validate("not-a-token")
	require.ErrorIs(t, err, ErrTokenInvalid)
}
