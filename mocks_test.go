package articles_test

import (
	"context"

	articles "github.com/goliatone/go-articles"
	"github.com/goliatone/go-repository-bun"
)

type testIdentity struct {
	id    string
	name  string
	email string
}

func (t testIdentity) ID() string    { return t.id }
func (t testIdentity) Name() string  { return t.name }
func (t testIdentity) Email() string { return t.email }

type quietLogger struct{}

func (quietLogger) Debug(format string, args ...any) {}
func (quietLogger) Info(format string, args ...any)  {}
func (quietLogger) Warn(format string, args ...any)  {}
func (quietLogger) Error(format string, args ...any) {}

// testConfig implements articles.Config with test defaults
type testConfig struct {
	signingKey      string
	tokenExpiration int
}

func (c testConfig) GetSigningKey() string { return c.signingKey }
func (c testConfig) GetSigningMethod() string {
	return "HS256"
}
func (c testConfig) GetContextKey() string { return "user" }
func (c testConfig) GetTokenExpiration() int {
	if c.tokenExpiration == 0 {
		return 60
	}
	return c.tokenExpiration
}
func (c testConfig) GetTokenLookup() string { return "" }
func (c testConfig) GetAuthScheme() string  { return "Bearer" }
func (c testConfig) GetIssuer() string      { return "articles-test" }

// memoryUserStore is an in-memory UserStore keyed by email
type memoryUserStore struct {
	users map[string]*articles.User
}

func newMemoryUserStore(users ...*articles.User) *memoryUserStore {
	s := &memoryUserStore{users: map[string]*articles.User{}}
	for _, u := range users {
		s.users[u.Email] = u
	}
	return s
}

func (s *memoryUserStore) GetByEmail(ctx context.Context, email string) (*articles.User, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, repository.NewRecordNotFound()
	}
	return user, nil
}
