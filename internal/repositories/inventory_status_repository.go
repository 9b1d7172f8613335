package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	"github.com/yossyi0323/App/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type InventoryStatusRepository interface {
	// Create inserts with version 0 and returns the stored row, item joined.
	Create(ctx context.Context, s *models.InventoryStatus) (*models.InventoryStatus, error)

	GetByID(ctx context.Context, id uuid.UUID) (*models.InventoryStatus, error)
	ListByBusinessDate(ctx context.Context, date models.BusinessDate) ([]*models.InventoryStatus, error)
	ListByBusinessDateAndDestination(ctx context.Context, date models.BusinessDate, placeID uuid.UUID) ([]*models.InventoryStatus, error)
	ListByBusinessDateAndSource(ctx context.Context, date models.BusinessDate, placeID uuid.UUID) ([]*models.InventoryStatus, error)
	ListPending(ctx context.Context, date models.BusinessDate) ([]*models.InventoryStatus, error)

	// Update is the guarded write: utils.ErrRowVersionConflict when id+expected
	// matches nothing, otherwise the re-read row.
	Update(ctx context.Context, s *models.InventoryStatus, expected int64) (*models.InventoryStatus, error)
	UpdateIfVersion(ctx context.Context, s *models.InventoryStatus, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.InventoryStatus) error) error
	Delete(ctx context.Context, id uuid.UUID) error

	// CreateDefaultsForDate inserts a default row for every routed item that
	// has none yet on date. Returns the number inserted.
	CreateDefaultsForDate(ctx context.Context, date models.BusinessDate) (int64, error)

	// RunInTx hands fn a repository bound to a single transaction.
	RunInTx(ctx context.Context, fn func(InventoryStatusRepository) error) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type inventoryStatusRepo struct {
	*BaseVersionedRepo[*models.InventoryStatus]
	db DB
}

func NewInventoryStatusRepository(db DB) InventoryStatusRepository {
	r := &inventoryStatusRepo{db: db}
	selectStmt := baseSelectInventoryStatus() + " WHERE s.id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanInventoryStatus)
	return r
}

func (r *inventoryStatusRepo) Create(ctx context.Context, s *models.InventoryStatus) (*models.InventoryStatus, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.Version = 0
	_, err := r.db.Exec(ctx, `
        INSERT INTO inventory_status (
            id, business_date, item_id,
            inventory_check_status, replenishment_status,
            preparation_status, order_request_status,
            inventory_count, replenishment_count, replenishment_note,
            version, created_at, updated_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10, 0, NOW(), NOW())
    `,
		s.ID,
		pgDate(s.BusinessDate),
		s.ItemID,
		s.InventoryCheckStatus,
		s.ReplenishmentStatus,
		s.PreparationStatus,
		s.OrderRequestStatus,
		s.InventoryCount,
		s.ReplenishmentCount,
		s.ReplenishmentNote,
	)
	if err != nil {
		return nil, err
	}
	return r.BaseVersionedRepo.GetByID(ctx, s.ID.String())
}

func (r *inventoryStatusRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.InventoryStatus, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *inventoryStatusRepo) ListByBusinessDate(ctx context.Context, date models.BusinessDate) ([]*models.InventoryStatus, error) {
	return r.list(ctx, baseSelectInventoryStatus()+`
        WHERE s.business_date=$1
        ORDER BY i.name, s.id
    `, pgDate(date))
}

func (r *inventoryStatusRepo) ListByBusinessDateAndDestination(ctx context.Context, date models.BusinessDate, placeID uuid.UUID) ([]*models.InventoryStatus, error) {
	return r.list(ctx, baseSelectInventoryStatus()+`
        WHERE s.business_date=$1
          AND EXISTS (
            SELECT 1 FROM item_replenishment ir
            WHERE ir.item_id = s.item_id AND ir.destination_place_id = $2
          )
        ORDER BY i.name, s.id
    `, pgDate(date), placeID)
}

func (r *inventoryStatusRepo) ListByBusinessDateAndSource(ctx context.Context, date models.BusinessDate, placeID uuid.UUID) ([]*models.InventoryStatus, error) {
	return r.list(ctx, baseSelectInventoryStatus()+`
        WHERE s.business_date=$1
          AND EXISTS (
            SELECT 1 FROM item_replenishment ir
            WHERE ir.item_id = s.item_id AND ir.source_place_id = $2
          )
        ORDER BY i.name, s.id
    `, pgDate(date), placeID)
}

func (r *inventoryStatusRepo) ListPending(ctx context.Context, date models.BusinessDate) ([]*models.InventoryStatus, error) {
	return r.list(ctx, baseSelectInventoryStatus()+`
        WHERE s.business_date=$1
          AND (s.inventory_check_status=$2
               OR s.replenishment_status=$3
               OR s.preparation_status=$3
               OR s.order_request_status=$3)
        ORDER BY i.name, s.id
    `, pgDate(date), models.InventoryCheckUnchecked, models.ProgressRequired)
}

func (r *inventoryStatusRepo) Update(ctx context.Context, s *models.InventoryStatus, expected int64) (*models.InventoryStatus, error) {
	return r.UpdateChecked(ctx, s, expected, r.UpdateIfVersion)
}

// UpdateIfVersion never touches business_date or item_id.
func (r *inventoryStatusRepo) UpdateIfVersion(ctx context.Context, s *models.InventoryStatus, expected int64) (pgconn.CommandTag, error) {
	return r.db.Exec(ctx, `
        UPDATE inventory_status SET
            inventory_check_status=$1, replenishment_status=$2,
            preparation_status=$3, order_request_status=$4,
            inventory_count=$5, replenishment_count=$6, replenishment_note=$7,
            version=version+1, updated_at=NOW()
        WHERE id=$8 AND version=$9
    `,
		s.InventoryCheckStatus,
		s.ReplenishmentStatus,
		s.PreparationStatus,
		s.OrderRequestStatus,
		s.InventoryCount,
		s.ReplenishmentCount,
		s.ReplenishmentNote,
		s.ID,
		expected,
	)
}

func (r *inventoryStatusRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.InventoryStatus) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *inventoryStatusRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM inventory_status WHERE id=$1`, id)
	return err
}

func (r *inventoryStatusRepo) CreateDefaultsForDate(ctx context.Context, date models.BusinessDate) (int64, error) {
	tag, err := r.db.Exec(ctx, `
        INSERT INTO inventory_status (
            id, business_date, item_id,
            inventory_check_status, replenishment_status,
            preparation_status, order_request_status,
            inventory_count, replenishment_count, replenishment_note,
            version, created_at, updated_at
        )
        SELECT gen_random_uuid(), $1, i.id, $2, $3, $3, $3, 0, 0, '', 0, NOW(), NOW()
        FROM item i
        WHERE EXISTS (SELECT 1 FROM item_replenishment ir WHERE ir.item_id = i.id)
        ON CONFLICT (business_date, item_id) DO NOTHING
    `, pgDate(date), models.InventoryCheckUnchecked, models.ProgressNotRequired)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *inventoryStatusRepo) RunInTx(ctx context.Context, fn func(InventoryStatusRepository) error) error {
	return runInTx(ctx, r.db, func(tx DB) error {
		return fn(NewInventoryStatusRepository(tx))
	})
}

func (r *inventoryStatusRepo) list(ctx context.Context, sql string, args ...any) ([]*models.InventoryStatus, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.InventoryStatus
	for rows.Next() {
		s, err := scanInventoryStatus(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func pgDate(d models.BusinessDate) pgtype.Date {
	return pgtype.Date{Time: d.Time(), Status: pgtype.Present}
}

func baseSelectInventoryStatus() string {
	return `
        SELECT
            s.id, s.business_date, s.item_id,
            s.inventory_check_status, s.replenishment_status,
            s.preparation_status, s.order_request_status,
            s.inventory_count, s.replenishment_count, s.replenishment_note,
            s.version, s.created_at, s.updated_at,
            i.id, i.name, i.description, i.unit, i.pattern_type,
            i.created_at, i.updated_at
        FROM inventory_status s
        JOIN item i ON i.id = s.item_id
    `
}

func scanInventoryStatus(row pgx.Row) (*models.InventoryStatus, error) {
	var (
		s  models.InventoryStatus
		it models.Item
		bd pgtype.Date
	)
	err := row.Scan(
		&s.ID,
		&bd,
		&s.ItemID,
		&s.InventoryCheckStatus,
		&s.ReplenishmentStatus,
		&s.PreparationStatus,
		&s.OrderRequestStatus,
		&s.InventoryCount,
		&s.ReplenishmentCount,
		&s.ReplenishmentNote,
		&s.Version,
		&s.CreatedAt,
		&s.UpdatedAt,
		&it.ID,
		&it.Name,
		&it.Description,
		&it.Unit,
		&it.PatternType,
		&it.CreatedAt,
		&it.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	s.BusinessDate = models.NewBusinessDate(bd.Time)
	s.Item = &it
	return &s, nil
}
