package articles_test

import (
	"context"
	"testing"

	articles "github.com/goliatone/go-articles"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserProvider_VerifyIdentity(t *testing.T) {
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

	ctx := context.Background()

	t.Run("verifies matching credentials", func(t *testing.T) {
		identity, err := provider.VerifyIdentity(ctx, "alice@example.com", "correct horse battery staple")
		assert.NoError(t, err)
		assert.Equal(t, user.ID.String(), identity.ID())
		assert.Equal(t, "Alice", identity.Name())
		assert.Equal(t, "alice@example.com", identity.Email())
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		_, err := provider.VerifyIdentity(ctx, "alice@example.com", "wrong password")
		assert.Equal(t, articles.ErrMismatchedHashAndPassword, err)
	})

	t.Run("rejects an unknown user", func(t *testing.T) {
		_, err := provider.VerifyIdentity(ctx, "nobody@example.com", "correct horse battery staple")
		assert.Equal(t, articles.ErrMismatchedHashAndPassword, err)
	})

	t.Run("unknown user and wrong password are indistinguishable", func(t *testing.T) {
		_, errUnknown := provider.VerifyIdentity(ctx, "nobody@example.com", "whatever")
		_, errWrong := provider.VerifyIdentity(ctx, "alice@example.com", "whatever")
		assert.Equal(t, errUnknown, errWrong)
	})

	t.Run("rejects a user without a stored hash", func(t *testing.T) {
		empty := &articles.User{
			ID:    uuid.New(),
			Name:  "Ghost",
			Email: "ghost@example.com",
		}
		p := articles.NewUserProvider(newMemoryUserStore(empty)).WithLogger(quietLogger{})

		_, err := p.VerifyIdentity(ctx, "ghost@example.com", "anything")
		assert.Equal(t, articles.ErrMismatchedHashAndPassword, err)
	})
}

func TestUserProvider_FindIdentityByIdentifier(t *testing.T) {
	user := &articles.User{
		ID:    uuid.New(),
		Name:  "Alice",
		Email: "alice@example.com",
	}

	provider := articles.NewUserProvider(newMemoryUserStore(user))

	identity, err := provider.FindIdentityByIdentifier(context.Background(), "alice@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", identity.Email())

	_, err = provider.FindIdentityByIdentifier(context.Background(), "nobody@example.com")
	assert.Error(t, err)
}
