package articles

import (
	"context"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/uptrace/bun"
)

type GrantAdminMessage struct {
	Email string `json:"email"`
}

func (e GrantAdminMessage) Type() string { return "user.grant_admin" }

type GrantAdminHandler struct {
	repo RepositoryManager
}

func NewGrantAdminHandler(repo RepositoryManager) *GrantAdminHandler {
	return &GrantAdminHandler{repo: repo}
}

func (h *GrantAdminHandler) Execute(ctx context.Context, event GrantAdminMessage) error {
	select {
	case <-ctx.Done():
		return goerrors.Wrap(
			ctx.Err(),
			goerrors.CategoryOperation,
			"context cancelled during admin grant",
		)
	default:
		return h.execute(ctx, event)
	}
}

func (h *GrantAdminHandler) execute(ctx context.Context, event GrantAdminMessage) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	err := h.repo.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		user, err := h.repo.Users().GetByEmailTx(ctx, tx, event.Email)
		if err != nil {
			if goerrors.IsNotFound(err) || repository.IsRecordNotFound(err) {
				return ErrNotFound
			}
			return goerrors.Wrap(err, goerrors.CategoryInternal, "could not resolve user for admin grant")
		}

		return h.repo.Groups().GrantAdminTx(ctx, tx, user.ID)
	})

	if err != nil {
		var richErr *goerrors.Error
		if goerrors.As(err, &richErr) {
			return richErr
		}

		return goerrors.Wrap(err, goerrors.CategoryInternal, "admin grant transaction failed")
	}

	return nil
}
