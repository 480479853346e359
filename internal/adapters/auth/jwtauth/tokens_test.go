package jwtauth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)

	token, err := tokens.Issue("admin")
	require.NoError(t, err)

	sub, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", sub)
}

func TestVerify_Rejects(t *testing.T) {
	tokens := NewTokens("test-secret", time.Minute)

	other, err := NewTokens("other-secret", time.Minute).Issue("admin")
	require.NoError(t, err)
	_, err = tokens.Verify(other)
	assert.Error(t, err, "wrong signature")

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iat": time.Now().Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = tokens.Verify(noSubject)
	assert.ErrorContains(t, err, "missing subject")

	expired, err := tokens.Issue("admin")
	require.NoError(t, err)
	tokens.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = tokens.Verify(expired)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	_, err = tokens.Verify("not-a-jwt")
	assert.Error(t, err)
}

func TestMissingSecret(t *testing.T) {
	tokens := NewTokens("", time.Minute)

	_, err := tokens.Issue("admin")
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = tokens.Verify("anything")
	assert.ErrorIs(t, err, ErrMissingSecret)
}
