package articles_test

import (
	"context"
	"testing"

	articles "github.com/goliatone/go-articles"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGroupsRepository_GrantAdmin(t *testing.T) {
	db := setupTestDB(t, "groups_grant_admin")
	groups := articles.NewGroupsRepository(db)
	ctx := context.Background()

	userID := uuid.New()

	isAdmin, err := groups.IsAdmin(ctx, userID)
	assert.NoError(t, err)
	assert.False(t, isAdmin)

	assert.NoError(t, groups.GrantAdmin(ctx, userID))

	isAdmin, err = groups.IsAdmin(ctx, userID)
	assert.NoError(t, err)
	assert.True(t, isAdmin)

	t.Run("granting twice is a no-op", func(t *testing.T) {
		assert.NoError(t, groups.GrantAdmin(ctx, userID))

		isAdmin, err := groups.IsAdmin(ctx, userID)
		assert.NoError(t, err)
		assert.True(t, isAdmin)
	})

	t.Run("other users stay non admin", func(t *testing.T) {
		isAdmin, err := groups.IsAdmin(ctx, uuid.New())
		assert.NoError(t, err)
		assert.False(t, isAdmin)
	})
}

func TestGroupsRepository_GetOrCreate(t *testing.T) {
	db := setupTestDB(t, "groups_get_or_create")
	groups := articles.NewGroupsRepository(db)
	ctx := context.Background()

	group, err := groups.GetOrCreate(ctx, "editors", "Editors")
	assert.NoError(t, err)
	assert.Equal(t, "editors", group.Code)
	assert.Equal(t, "Editors", group.Name)

	// second call finds the existing row, name is not overwritten
	again, err := groups.GetOrCreate(ctx, "editors", "Renamed")
	assert.NoError(t, err)
	assert.Equal(t, "editors", again.Code)
	assert.Equal(t, "Editors", again.Name)

	t.Run("returned record matches the stored row", func(t *testing.T) {
		created, err := groups.GetOrCreate(ctx, "writers", "Writers")
		assert.NoError(t, err)

		stored := &articles.Group{}
		err = db.NewSelect().
			Model(stored).
			Where("?TableAlias.code = ?", "writers").
			Scan(ctx)
		assert.NoError(t, err)
		assert.Equal(t, stored.Code, created.Code)
		assert.Equal(t, stored.Name, created.Name)
	})
}
