package articles_test

import (
	"context"
	"testing"

	articles "github.com/goliatone/go-articles"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestAuthenticator(t *testing.T, cfg testConfig) (*articles.Auther, *articles.User) {
	t.Helper()

	hash, err := articles.HashPassword("correct horse battery staple")
	assert.NoError(t, err)

	user := &articles.User{
		ID:           uuid.New(),
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
	}

	provider := articles.NewUserProvider(newMemoryUserStore(user)).
		WithLogger(quietLogger{})

	auther := articles.NewAuthenticator(provider, cfg).
		WithLogger(quietLogger{})

	return auther, user
}

func TestAuther_Login(t *testing.T) {
	auther, _ := newTestAuthenticator(t, testConfig{signingKey: "login-test-key"})
	ctx := context.Background()

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		token, err := auther.Login(ctx, "alice@example.com", "correct horse battery staple")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("collapses a wrong password into invalid credentials", func(t *testing.T) {
		_, err := auther.Login(ctx, "alice@example.com", "wrong password")
		assert.Equal(t, articles.ErrInvalidCredentials, err)
	})

	t.Run("collapses an unknown user into invalid credentials", func(t *testing.T) {
		_, err := auther.Login(ctx, "nobody@example.com", "correct horse battery staple")
		assert.Equal(t, articles.ErrInvalidCredentials, err)
	})
}

func TestAuther_CurrentUser(t *testing.T) {
	auther, user := newTestAuthenticator(t, testConfig{signingKey: "current-user-key"})
	ctx := context.Background()

	t.Run("resolves the identity from a live token", func(t *testing.T) {
		token, err := auther.Login(ctx, "alice@example.com", "correct horse battery staple")
		assert.NoError(t, err)

		identity, err := auther.CurrentUser(token)
		assert.NoError(t, err)
		assert.Equal(t, user.ID.String(), identity.ID())
		assert.Equal(t, "Alice", identity.Name())
		assert.Equal(t, "alice@example.com", identity.Email())
	})

	t.Run("rejects an empty token", func(t *testing.T) {
		_, err := auther.CurrentUser("")
		assert.Equal(t, articles.ErrMissingToken, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := auther.CurrentUser("not.a.token")
		assert.Equal(t, articles.ErrInvalidCredentials, err)
	})

	t.Run("rejects a token signed with a different key", func(t *testing.T) {
		other, _ := newTestAuthenticator(t, testConfig{signingKey: "a-different-key"})
		token, err := other.Login(ctx, "alice@example.com", "correct horse battery staple")
		assert.NoError(t, err)

		_, err = auther.CurrentUser(token)
		assert.Equal(t, articles.ErrInvalidCredentials, err)
	})

	t.Run("reports an elapsed window as expired", func(t *testing.T) {
		expired, _ := newTestAuthenticator(t, testConfig{
			signingKey:      "current-user-key",
			tokenExpiration: -5,
		})
		token, err := expired.Login(ctx, "alice@example.com", "correct horse battery staple")
		assert.NoError(t, err)

		_, err = auther.CurrentUser(token)
		assert.Equal(t, articles.ErrTokenExpired, err)
	})
}
