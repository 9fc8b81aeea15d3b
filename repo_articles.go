package articles

import (
	"context"
	"database/sql"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Articles interface {
	repository.Repository[*Article]

	ListAll(ctx context.Context) ([]*Article, error)
	Find(ctx context.Context, id string) (*Article, error)
}

type articleRepo struct {
	repository.Repository[*Article]
	db *bun.DB
}

var _ Articles = (*articleRepo)(nil)

func NewArticlesRepository(db *bun.DB) Articles {
	repo := repository.NewRepository[*Article](db, repository.ModelHandlers[*Article]{
		NewRecord: func() *Article { return &Article{} },
		GetID: func(a *Article) uuid.UUID {
			if a == nil {
				return uuid.Nil
			}
			return a.ID
		},
		SetID: func(a *Article, id uuid.UUID) {
			if a != nil {
				a.ID = id
			}
		},
		GetIdentifier: func() string {
			return "id"
		},
	})

	return &articleRepo{
		Repository: repo,
		db:         db,
	}
}

// ListAll returns every article, newest first.
func (a *articleRepo) ListAll(ctx context.Context) ([]*Article, error) {
	var records []*Article
	err := a.db.NewSelect().
		Model(&records).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to list articles")
	}

	return records, nil
}

// Find resolves a single article by id, translating both a malformed id and
// a missing record to ErrNotFound.
func (a *articleRepo) Find(ctx context.Context, id string) (*Article, error) {
	aid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	record := &Article{}
	err = a.db.NewSelect().
		Model(record).
		Where("?TableAlias.id = ?", aid).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if repository.IsRecordNotFound(err) || err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to find article")
	}

	return record, nil
}
