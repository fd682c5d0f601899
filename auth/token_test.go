package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	tokens := NewTokenService([]byte("test-secret"), 24*time.Hour)

	token, expiresAt, err := tokens.Issue("account-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, 5*time.Second)

	accountID, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "account-123", accountID)
}

func TestTokenService_Expired(t *testing.T) {
	tokens := NewTokenService([]byte("test-secret"), -time.Minute)

	token, _, err := tokens.Issue("account-123")
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_TamperedSignature(t *testing.T) {
	tokens := NewTokenService([]byte("test-secret"), time.Hour)

	token, _, err := tokens.Issue("account-123")
	require.NoError(t, err)

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = tokens.Verify(tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService([]byte("secret-one"), time.Hour)
	verifier := NewTokenService([]byte("secret-two"), time.Hour)

	token, _, err := issuer.Issue("account-123")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_Garbage(t *testing.T) {
	tokens := NewTokenService([]byte("test-secret"), time.Hour)

	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		_, err := tokens.Verify(input)
		assert.ErrorIs(t, err, ErrTokenInvalid, "input %q", input)
	}
}
