package auth

import (
	"testing"
	"time"

	"castlink_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenManager_EmptySecret(t *testing.T) {
	t.Parallel()

	_, err := NewTokenManager("")
	assert.Error(t, err)

	_, err = NewTokenManager("   ")
	assert.Error(t, err)
}

func TestTokenManager_IssueAndParse(t *testing.T) {
	t.Parallel()

	tm, err := NewTokenManager("test-secret")
	require.NoError(t, err)

	token, err := tm.Issue(42, "model@test.com", models.RoleUser, UserTokenTTL)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.AccountID)
	assert.Equal(t, "model@test.com", claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)
	assert.Equal(t, "42", claims.Subject)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	t.Parallel()

	tm, err := NewTokenManager("test-secret")
	require.NoError(t, err)

	token, err := tm.Issue(1, "model@test.com", models.RoleUser, -time.Minute)
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer, err := NewTokenManager("secret-one")
	require.NoError(t, err)
	verifier, err := NewTokenManager("secret-two")
	require.NoError(t, err)

	token, err := issuer.Issue(1, "model@test.com", models.RoleUser, UserTokenTTL)
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_GarbageToken(t *testing.T) {
	t.Parallel()

	tm, err := NewTokenManager("test-secret")
	require.NoError(t, err)

	_, err = tm.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
