package auth

import (
	"testing"
	"time"

	"railBooker/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthenticator(t *testing.T) *Authenticator {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	return New(config.Auth{
		Secret:   "test-signing-key",
		TokenTTL: time.Hour,
		Users: []config.AuthUser{
			{Username: "user", PasswordHash: string(hash), Role: RoleUser},
			{Username: "admin", PasswordHash: string(hash), Role: RoleAdmin},
		},
	})
}

func TestLoginAndVerify(t *testing.T) {
	a := newAuthenticator(t)

	token, err := a.Login("user", "secret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := a.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user", claims.Username)
	assert.Equal(t, RoleUser, claims.Role)
}

func TestLoginAdminRole(t *testing.T) {
	a := newAuthenticator(t)

	token, err := a.Login("admin", "secret-pass")
	require.NoError(t, err)

	claims, err := a.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	a := newAuthenticator(t)

	_, err := a.Login("user", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	a := newAuthenticator(t)

	_, err := a.Login("nobody", "secret-pass")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyGarbageToken(t *testing.T) {
	a := newAuthenticator(t)

	_, err := a.Verify("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongKey(t *testing.T) {
	a := newAuthenticator(t)

	token, err := a.Login("user", "secret-pass")
	require.NoError(t, err)

	other := New(config.Auth{
		Secret:   "another-key",
		TokenTTL: time.Hour,
	})

	_, err = other.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyExpiredToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	a := New(config.Auth{
		Secret:   "test-signing-key",
		TokenTTL: -time.Minute,
		Users: []config.AuthUser{
			{Username: "user", PasswordHash: string(hash), Role: RoleUser},
		},
	})

	token, err := a.Login("user", "secret-pass")
	require.NoError(t, err)

	_, err = a.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}
