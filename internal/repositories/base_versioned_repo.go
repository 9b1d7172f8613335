package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"
	"github.com/yossyi0323/App/internal/utils"
)

const defaultMaxRetries = 3

/*
BaseVersionedRepo holds the DB connection, a SELECT‑by‑ID statement,
and a scanner for a single entity type T.  It gives you:

	• GetByID(ctx, id string) (T, error)
	• UpdateChecked(ctx, entity, expected, updateIfVersion)
	• UpdateWithRetry(ctx, id, mutate, updateIfVersion)
*/
type BaseVersionedRepo[T EntityWithVersion] struct {
	db         DB
	selectByID string
	scan       func(row pgx.Row) (T, error)
}

// NewBaseRepo is called by concrete repositories.
func NewBaseRepo[T EntityWithVersion](
	db DB,
	selectByID string,
	scan func(pgx.Row) (T, error),
) *BaseVersionedRepo[T] {
	return &BaseVersionedRepo[T]{db: db, selectByID: selectByID, scan: scan}
}

// -------------------------- public helpers --------------------------

func (b *BaseVersionedRepo[T]) GetByID(ctx context.Context, id string) (T, error) {
	row := b.db.QueryRow(ctx, b.selectByID, id)
	return b.scan(row)
}

// UpdateChecked performs a single guarded write. Zero affected rows is
// reported as utils.ErrRowVersionConflict whether the row is stale or gone.
// On success the row is read back so joined columns are current.
func (b *BaseVersionedRepo[T]) UpdateChecked(
	ctx context.Context,
	entity T,
	expectedVersion int64,
	updateIfVersion UpdateIfVersionFunc[T],
) (T, error) {
	var zero T
	tag, err := updateIfVersion(ctx, entity, expectedVersion)
	if err != nil {
		return zero, err
	}
	if tag.RowsAffected() == 0 {
		return zero, utils.ErrRowVersionConflict
	}
	return b.GetByID(ctx, entity.GetID())
}

// UpdateWithRetry wires the generic optimistic‑locking loop.
func (b *BaseVersionedRepo[T]) UpdateWithRetry(
	ctx context.Context,
	id string,
	mutate func(T) error,
	updateIfVersion UpdateIfVersionFunc[T],
) error {
	return WithRetry(
		ctx,
		defaultMaxRetries,
		id,
		b.GetByID,
		updateIfVersion,
		mutate,
	)
}
