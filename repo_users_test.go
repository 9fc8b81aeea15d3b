package articles_test

import (
	"context"
	"database/sql"
	"testing"

	articles "github.com/goliatone/go-articles"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func setupTestDB(t *testing.T, name string) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, "file:"+name+"?mode=memory&cache=shared")
	assert.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	models := []any{
		(*articles.User)(nil),
		(*articles.Group)(nil),
		(*articles.GroupMembership)(nil),
		(*articles.Article)(nil),
	}
	for _, model := range models {
		_, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx)
		assert.NoError(t, err)
	}

	return db
}

func TestUsersRepository_Register(t *testing.T) {
	db := setupTestDB(t, "users_register")
	repo := articles.NewUsersRepository(db)
	ctx := context.Background()

	hash, err := articles.HashPassword("a long enough password")
	assert.NoError(t, err)

	user, err := repo.Register(ctx, &articles.User{
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
	})
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)

	t.Run("rejects a duplicate email", func(t *testing.T) {
		_, err := repo.Register(ctx, &articles.User{
			Name:         "Other Alice",
			Email:        "alice@example.com",
			PasswordHash: hash,
		})
		assert.Equal(t, articles.ErrDuplicateEmail, err)
	})

	t.Run("keeps a provided id", func(t *testing.T) {
		id := uuid.New()
		record, err := repo.Register(ctx, &articles.User{
			ID:           id,
			Name:         "Bob",
			Email:        "bob@example.com",
			PasswordHash: hash,
		})
		assert.NoError(t, err)
		assert.Equal(t, id, record.ID)
	})
}

func TestUsersRepository_GetByEmail(t *testing.T) {
	db := setupTestDB(t, "users_get_by_email")
	repo := articles.NewUsersRepository(db)
	ctx := context.Background()

	_, err := repo.Register(ctx, &articles.User{
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "irrelevant",
	})
	assert.NoError(t, err)

	user, err := repo.GetByEmail(ctx, "alice@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.Error(t, err)
	assert.True(t, repository.IsRecordNotFound(err))
}
