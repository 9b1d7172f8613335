package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/yossyi0323/App/internal/models"
)

type PostRepository interface {
	Create(ctx context.Context, p *models.Post) (*models.Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error)
	ListNewestFirst(ctx context.Context) ([]*models.Post, error)

	Update(ctx context.Context, p *models.Post, expected int64) (*models.Post, error)
	UpdateIfVersion(ctx context.Context, p *models.Post, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Post) error) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type postRepo struct {
	*BaseVersionedRepo[*models.Post]
	db DB
}

func NewPostRepository(db DB) PostRepository {
	r := &postRepo{db: db}
	selectStmt := baseSelectPost() + " WHERE id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanPost)
	return r
}

func (r *postRepo) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.Version = 0
	_, err := r.db.Exec(ctx, `
        INSERT INTO post (id, content, version, created_at, updated_at)
        VALUES ($1, $2, 0, NOW(), NOW())
    `, p.ID, p.Content)
	if err != nil {
		return nil, err
	}
	return r.BaseVersionedRepo.GetByID(ctx, p.ID.String())
}

func (r *postRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *postRepo) ListNewestFirst(ctx context.Context) ([]*models.Post, error) {
	rows, err := r.db.Query(ctx, baseSelectPost()+" ORDER BY created_at DESC, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *postRepo) Update(ctx context.Context, p *models.Post, expected int64) (*models.Post, error) {
	return r.UpdateChecked(ctx, p, expected, r.UpdateIfVersion)
}

func (r *postRepo) UpdateIfVersion(ctx context.Context, p *models.Post, expected int64) (pgconn.CommandTag, error) {
	return r.db.Exec(ctx, `
        UPDATE post SET content=$1, version=version+1, updated_at=NOW()
        WHERE id=$2 AND version=$3
    `, p.Content, p.ID, expected)
}

func (r *postRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Post) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *postRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM post WHERE id=$1`, id)
	return err
}

func baseSelectPost() string {
	return `
        SELECT id, content, version, created_at, updated_at
        FROM post
    `
}

func scanPost(row pgx.Row) (*models.Post, error) {
	var p models.Post
	err := row.Scan(&p.ID, &p.Content, &p.Version, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
