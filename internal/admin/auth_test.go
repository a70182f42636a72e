package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func testAuth(t *testing.T) *Auth {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	assert.NoError(t, err)
	return NewAuth(string(hash), "test-secret")
}

func TestAuth_Login(t *testing.T) {
	auth := testAuth(t)

	t.Run("IssuesToken", func(t *testing.T) {
		token, err := auth.Login("correct horse")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := auth.Login("battery staple")
		assert.ErrorIs(t, err, ErrInvalidPassword)
	})

	t.Run("NotConfigured", func(t *testing.T) {
		_, err := NewAuth("", "test-secret").Login("anything")
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}

func TestAuth_Verify(t *testing.T) {
	auth := testAuth(t)

	t.Run("RoundTrip", func(t *testing.T) {
		token, err := auth.Login("correct horse")
		assert.NoError(t, err)
		assert.NoError(t, auth.Verify(token))
	})

	t.Run("Garbage", func(t *testing.T) {
		assert.ErrorIs(t, auth.Verify("not.a.token"), ErrInvalidToken)
		assert.ErrorIs(t, auth.Verify(""), ErrInvalidToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		token, err := auth.Login("correct horse")
		assert.NoError(t, err)

		other := NewAuth(auth.passwordHash, "other-secret")
		assert.ErrorIs(t, other.Verify(token), ErrInvalidToken)
	})
}
