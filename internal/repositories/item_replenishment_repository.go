package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/yossyi0323/App/internal/models"
)

type ItemReplenishmentRepository interface {
	Create(ctx context.Context, r *models.ItemReplenishment) (*models.ItemReplenishment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ItemReplenishment, error)
	ListAll(ctx context.Context) ([]*models.ItemReplenishment, error)
	ListBySource(ctx context.Context, placeID uuid.UUID) ([]*models.ItemReplenishment, error)
	ListByDestination(ctx context.Context, placeID uuid.UUID) ([]*models.ItemReplenishment, error)
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]*models.ItemReplenishment, error)

	Update(ctx context.Context, r *models.ItemReplenishment, expected int64) (*models.ItemReplenishment, error)
	UpdateIfVersion(ctx context.Context, r *models.ItemReplenishment, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.ItemReplenishment) error) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type itemReplenishmentRepo struct {
	*BaseVersionedRepo[*models.ItemReplenishment]
	db DB
}

func NewItemReplenishmentRepository(db DB) ItemReplenishmentRepository {
	r := &itemReplenishmentRepo{db: db}
	selectStmt := baseSelectItemReplenishment() + " WHERE id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanItemReplenishment)
	return r
}

func (r *itemReplenishmentRepo) Create(ctx context.Context, ir *models.ItemReplenishment) (*models.ItemReplenishment, error) {
	if ir.ID == uuid.Nil {
		ir.ID = uuid.New()
	}
	ir.Version = 0
	_, err := r.db.Exec(ctx, `
        INSERT INTO item_replenishment (
            id, item_id, source_place_id, destination_place_id,
            replenishment_type, order_request_destination,
            version, created_at, updated_at
        ) VALUES ($1,$2,$3,$4,$5,$6, 0, NOW(), NOW())
    `,
		ir.ID,
		ir.ItemID,
		ir.SourcePlaceID,
		ir.DestinationPlaceID,
		ir.ReplenishmentType,
		ir.OrderRequestDestination,
	)
	if err != nil {
		return nil, err
	}
	return r.BaseVersionedRepo.GetByID(ctx, ir.ID.String())
}

func (r *itemReplenishmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.ItemReplenishment, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *itemReplenishmentRepo) ListAll(ctx context.Context) ([]*models.ItemReplenishment, error) {
	return r.list(ctx, baseSelectItemReplenishment()+" ORDER BY created_at, id")
}

func (r *itemReplenishmentRepo) ListBySource(ctx context.Context, placeID uuid.UUID) ([]*models.ItemReplenishment, error) {
	return r.list(ctx, baseSelectItemReplenishment()+" WHERE source_place_id=$1 ORDER BY created_at, id", placeID)
}

func (r *itemReplenishmentRepo) ListByDestination(ctx context.Context, placeID uuid.UUID) ([]*models.ItemReplenishment, error) {
	return r.list(ctx, baseSelectItemReplenishment()+" WHERE destination_place_id=$1 ORDER BY created_at, id", placeID)
}

func (r *itemReplenishmentRepo) ListByItem(ctx context.Context, itemID uuid.UUID) ([]*models.ItemReplenishment, error) {
	return r.list(ctx, baseSelectItemReplenishment()+" WHERE item_id=$1 ORDER BY created_at, id", itemID)
}

func (r *itemReplenishmentRepo) Update(ctx context.Context, ir *models.ItemReplenishment, expected int64) (*models.ItemReplenishment, error) {
	return r.UpdateChecked(ctx, ir, expected, r.UpdateIfVersion)
}

func (r *itemReplenishmentRepo) UpdateIfVersion(ctx context.Context, ir *models.ItemReplenishment, expected int64) (pgconn.CommandTag, error) {
	return r.db.Exec(ctx, `
        UPDATE item_replenishment SET
            item_id=$1, source_place_id=$2, destination_place_id=$3,
            replenishment_type=$4, order_request_destination=$5,
            version=version+1, updated_at=NOW()
        WHERE id=$6 AND version=$7
    `,
		ir.ItemID,
		ir.SourcePlaceID,
		ir.DestinationPlaceID,
		ir.ReplenishmentType,
		ir.OrderRequestDestination,
		ir.ID,
		expected,
	)
}

func (r *itemReplenishmentRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.ItemReplenishment) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *itemReplenishmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM item_replenishment WHERE id=$1`, id)
	return err
}

func (r *itemReplenishmentRepo) list(ctx context.Context, sql string, args ...any) ([]*models.ItemReplenishment, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.ItemReplenishment
	for rows.Next() {
		ir, err := scanItemReplenishment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ir)
	}
	return out, rows.Err()
}

func baseSelectItemReplenishment() string {
	return `
        SELECT
            id, item_id, source_place_id, destination_place_id,
            replenishment_type, order_request_destination,
            version, created_at, updated_at
        FROM item_replenishment
    `
}

func scanItemReplenishment(row pgx.Row) (*models.ItemReplenishment, error) {
	var ir models.ItemReplenishment
	err := row.Scan(
		&ir.ID,
		&ir.ItemID,
		&ir.SourcePlaceID,
		&ir.DestinationPlaceID,
		&ir.ReplenishmentType,
		&ir.OrderRequestDestination,
		&ir.Version,
		&ir.CreatedAt,
		&ir.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &ir, nil
}
