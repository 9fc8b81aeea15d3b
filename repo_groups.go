package articles

import (
	"context"
	"database/sql"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Groups manages group records and membership grants. Memberships carry a
// composite key so this repository talks to bun directly instead of going
// through the generic repository handlers.
type Groups interface {
	GetOrCreate(ctx context.Context, code, name string) (*Group, error)
	GetOrCreateTx(ctx context.Context, tx bun.IDB, code, name string) (*Group, error)
	GrantAdmin(ctx context.Context, userID uuid.UUID) error
	GrantAdminTx(ctx context.Context, tx bun.IDB, userID uuid.UUID) error
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

type groups struct {
	db *bun.DB
}

var _ Groups = (*groups)(nil)

func NewGroupsRepository(db *bun.DB) Groups {
	return &groups{db: db}
}

func (g *groups) GetOrCreate(ctx context.Context, code, name string) (*Group, error) {
	return g.GetOrCreateTx(ctx, g.db, code, name)
}

func (g *groups) GetOrCreateTx(ctx context.Context, tx bun.IDB, code, name string) (*Group, error) {
	record := &Group{}
	err := tx.NewSelect().
		Model(record).
		Where("?TableAlias.code = ?", code).
		Limit(1).
		Scan(ctx)

	if err == nil {
		return record, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to look up group")
	}

	record = &Group{Code: code, Name: name}
	_, err = tx.NewInsert().
		Model(record).
		On("CONFLICT DO NOTHING").
		Exec(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to create group")
	}

	// If a concurrent insert won the conflict, our record holds the values we
	// tried to write, not the row's. Read it back so callers see the stored row.
	record = &Group{}
	err = tx.NewSelect().
		Model(record).
		Where("?TableAlias.code = ?", code).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to read back group")
	}

	return record, nil
}

// GrantAdmin makes the user a member of the admin group. Granting an
// existing membership is a no-op.
func (g *groups) GrantAdmin(ctx context.Context, userID uuid.UUID) error {
	return g.GrantAdminTx(ctx, g.db, userID)
}

func (g *groups) GrantAdminTx(ctx context.Context, tx bun.IDB, userID uuid.UUID) error {
	group, err := g.GetOrCreateTx(ctx, tx, AdminGroupCode, AdminGroupName)
	if err != nil {
		return err
	}

	now := time.Now()
	membership := &GroupMembership{
		GroupCode: group.Code,
		UserID:    userID,
		CreatedAt: &now,
	}

	_, err = tx.NewInsert().
		Model(membership).
		On("CONFLICT DO NOTHING").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to grant admin membership").
			WithMetadata(map[string]any{
				"user_id": userID.String(),
			})
	}

	return nil
}

func (g *groups) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	exists, err := g.db.NewSelect().
		Model((*GroupMembership)(nil)).
		Where("?TableAlias.group_code = ?", AdminGroupCode).
		Where("?TableAlias.user_id = ?", userID).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, errors.CategoryInternal, "failed to check admin membership")
	}

	return exists, nil
}
