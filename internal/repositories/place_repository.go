package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/yossyi0323/App/internal/models"
)

type PlaceRepository interface {
	Create(ctx context.Context, p *models.Place) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Place, error)
	ListAll(ctx context.Context) ([]*models.Place, error)
	ListByType(ctx context.Context, placeType models.PlaceType) ([]*models.Place, error)
}

type placeRepo struct {
	db DB
}

func NewPlaceRepository(db DB) PlaceRepository {
	return &placeRepo{db: db}
}

func (r *placeRepo) Create(ctx context.Context, p *models.Place) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx, `
        INSERT INTO place (id, type, name, display_order, created_at, updated_at)
        VALUES ($1, $2, $3, $4, NOW(), NOW())
    `, p.ID, p.Type, p.Name, p.DisplayOrder)
	return err
}

func (r *placeRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Place, error) {
	return scanPlace(r.db.QueryRow(ctx, baseSelectPlace()+" WHERE id=$1", id))
}

func (r *placeRepo) ListAll(ctx context.Context) ([]*models.Place, error) {
	return r.list(ctx, baseSelectPlace()+" ORDER BY type, display_order, name")
}

func (r *placeRepo) ListByType(ctx context.Context, placeType models.PlaceType) ([]*models.Place, error) {
	return r.list(ctx, baseSelectPlace()+" WHERE type=$1 ORDER BY display_order, name", placeType)
}

func (r *placeRepo) list(ctx context.Context, sql string, args ...any) ([]*models.Place, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Place
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func baseSelectPlace() string {
	return `
        SELECT id, type, name, display_order, created_at, updated_at
        FROM place
    `
}

func scanPlace(row pgx.Row) (*models.Place, error) {
	var p models.Place
	err := row.Scan(
		&p.ID,
		&p.Type,
		&p.Name,
		&p.DisplayOrder,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
