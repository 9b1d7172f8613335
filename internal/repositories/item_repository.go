package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/yossyi0323/App/internal/models"
)

type ItemRepository interface {
	Create(ctx context.Context, it *models.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
	ListAll(ctx context.Context) ([]*models.Item, error)
	// ListByPlace returns items routed from or to the place.
	ListByPlace(ctx context.Context, placeID uuid.UUID) ([]*models.Item, error)
	ListByDestination(ctx context.Context, placeID uuid.UUID) ([]*models.Item, error)
	ListBySource(ctx context.Context, placeID uuid.UUID) ([]*models.Item, error)
	SearchByName(ctx context.Context, term string) ([]*models.Item, error)
}

type itemRepo struct {
	db DB
}

func NewItemRepository(db DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) Create(ctx context.Context, it *models.Item) error {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx, `
        INSERT INTO item (id, name, description, unit, pattern_type, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
    `, it.ID, it.Name, it.Description, it.Unit, it.PatternType)
	return err
}

func (r *itemRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	return scanItem(r.db.QueryRow(ctx, baseSelectItem()+" WHERE i.id=$1", id))
}

func (r *itemRepo) ListAll(ctx context.Context) ([]*models.Item, error) {
	return r.list(ctx, baseSelectItem()+" ORDER BY i.name, i.id")
}

func (r *itemRepo) ListByPlace(ctx context.Context, placeID uuid.UUID) ([]*models.Item, error) {
	return r.list(ctx, baseSelectItem()+`
        WHERE EXISTS (
            SELECT 1 FROM item_replenishment ir
            WHERE ir.item_id = i.id
              AND (ir.source_place_id = $1 OR ir.destination_place_id = $1)
        )
        ORDER BY i.name, i.id
    `, placeID)
}

func (r *itemRepo) ListByDestination(ctx context.Context, placeID uuid.UUID) ([]*models.Item, error) {
	return r.list(ctx, baseSelectItem()+`
        WHERE EXISTS (
            SELECT 1 FROM item_replenishment ir
            WHERE ir.item_id = i.id AND ir.destination_place_id = $1
        )
        ORDER BY i.name, i.id
    `, placeID)
}

func (r *itemRepo) ListBySource(ctx context.Context, placeID uuid.UUID) ([]*models.Item, error) {
	return r.list(ctx, baseSelectItem()+`
        WHERE EXISTS (
            SELECT 1 FROM item_replenishment ir
            WHERE ir.item_id = i.id AND ir.source_place_id = $1
        )
        ORDER BY i.name, i.id
    `, placeID)
}

// SearchByName matches term against the NFKC form of the stored name, so
// callers pass a term already folded with utils.NormalizeText. Names keep
// the spelling they were created with.
func (r *itemRepo) SearchByName(ctx context.Context, term string) ([]*models.Item, error) {
	return r.list(ctx, baseSelectItem()+`
        WHERE normalize(i.name, NFKC) ILIKE '%' || $1 || '%'
        ORDER BY i.name, i.id
    `, escapeLike(term))
}

func (r *itemRepo) list(ctx context.Context, sql string, args ...any) ([]*models.Item, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func baseSelectItem() string {
	return `
        SELECT i.id, i.name, i.description, i.unit, i.pattern_type, i.created_at, i.updated_at
        FROM item i
    `
}

func scanItem(row pgx.Row) (*models.Item, error) {
	var it models.Item
	err := row.Scan(
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
	return &it, nil
}
