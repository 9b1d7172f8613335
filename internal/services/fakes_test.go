package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/yossyi0323/App/internal/models"
	"github.com/yossyi0323/App/internal/repositories"
	"github.com/yossyi0323/App/internal/utils"
)

/* ------------------------------------------------------------------
   Inventory status
------------------------------------------------------------------ */

type memInventory struct {
	mu        sync.Mutex
	rows      map[uuid.UUID]models.InventoryStatus
	routed    []uuid.UUID
	createErr error
}

var _ repositories.InventoryStatusRepository = (*memInventory)(nil)

func newMemInventory(routed ...uuid.UUID) *memInventory {
	return &memInventory{rows: map[uuid.UUID]models.InventoryStatus{}, routed: routed}
}

func (m *memInventory) Create(_ context.Context, s *models.InventoryStatus) (*models.InventoryStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return nil, m.createErr
	}
	for _, r := range m.rows {
		if r.BusinessDate == s.BusinessDate && r.ItemID == s.ItemID {
			return nil, &pgconn.PgError{Code: "23505"}
		}
	}
	row := *s
	row.Version = 0
	m.rows[row.ID] = row
	return &row, nil
}

func (m *memInventory) GetByID(_ context.Context, id uuid.UUID) (*models.InventoryStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (m *memInventory) list(keep func(models.InventoryStatus) bool) []*models.InventoryStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.InventoryStatus
	for _, r := range m.rows {
		if keep(r) {
			r := r
			out = append(out, &r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out
}

func (m *memInventory) ListByBusinessDate(_ context.Context, d models.BusinessDate) ([]*models.InventoryStatus, error) {
	return m.list(func(r models.InventoryStatus) bool { return r.BusinessDate == d }), nil
}

func (m *memInventory) ListByBusinessDateAndDestination(_ context.Context, d models.BusinessDate, _ uuid.UUID) ([]*models.InventoryStatus, error) {
	return nil, nil
}

func (m *memInventory) ListByBusinessDateAndSource(_ context.Context, d models.BusinessDate, _ uuid.UUID) ([]*models.InventoryStatus, error) {
	return m.list(func(r models.InventoryStatus) bool { return r.BusinessDate == d }), nil
}

func (m *memInventory) ListPending(_ context.Context, d models.BusinessDate) ([]*models.InventoryStatus, error) {
	return m.list(func(r models.InventoryStatus) bool { return r.BusinessDate == d && r.IsPending() }), nil
}

func (m *memInventory) Update(ctx context.Context, s *models.InventoryStatus, expected int64) (*models.InventoryStatus, error) {
	tag, _ := m.UpdateIfVersion(ctx, s, expected)
	if tag.RowsAffected() == 0 {
		return nil, utils.ErrRowVersionConflict
	}
	return m.GetByID(ctx, s.ID)
}

func (m *memInventory) UpdateIfVersion(_ context.Context, s *models.InventoryStatus, expected int64) (pgconn.CommandTag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.rows[s.ID]
	if !ok || cur.Version != expected {
		return pgconn.CommandTag("UPDATE 0"), nil
	}
	row := *s
	row.BusinessDate = cur.BusinessDate
	row.ItemID = cur.ItemID
	row.Version = expected + 1
	m.rows[s.ID] = row
	return pgconn.CommandTag("UPDATE 1"), nil
}

func (m *memInventory) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.InventoryStatus) error) error {
	cur, _ := m.GetByID(ctx, id)
	if cur == nil {
		return utils.ErrRowVersionConflict
	}
	if err := mutate(cur); err != nil {
		return err
	}
	_, err := m.Update(ctx, cur, cur.Version)
	return err
}

func (m *memInventory) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	return nil
}

func (m *memInventory) CreateDefaultsForDate(ctx context.Context, d models.BusinessDate) (int64, error) {
	var n int64
	for _, itemID := range m.routed {
		if _, err := m.Create(ctx, models.NewDefaultInventoryStatus(d, itemID)); err == nil {
			n++
		}
	}
	return n, nil
}

// RunInTx restores the pre-call snapshot when fn fails.
func (m *memInventory) RunInTx(_ context.Context, fn func(repositories.InventoryStatusRepository) error) error {
	m.mu.Lock()
	snapshot := make(map[uuid.UUID]models.InventoryStatus, len(m.rows))
	for k, v := range m.rows {
		snapshot[k] = v
	}
	m.mu.Unlock()

	if err := fn(m); err != nil {
		m.mu.Lock()
		m.rows = snapshot
		m.mu.Unlock()
		return err
	}
	return nil
}

/* ------------------------------------------------------------------
   Posts
------------------------------------------------------------------ */

type memPosts struct {
	mu   sync.Mutex
	rows map[uuid.UUID]models.Post
	seq  int
}

var _ repositories.PostRepository = (*memPosts)(nil)

func newMemPosts() *memPosts { return &memPosts{rows: map[uuid.UUID]models.Post{}} }

func (m *memPosts) Create(_ context.Context, p *models.Post) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row := *p
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	m.seq++
	row.CreatedAt = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC).Add(time.Duration(m.seq) * time.Minute)
	row.UpdatedAt = row.CreatedAt
	row.Version = 0
	m.rows[row.ID] = row
	return &row, nil
}

func (m *memPosts) GetByID(_ context.Context, id uuid.UUID) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (m *memPosts) ListNewestFirst(context.Context) ([]*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Post
	for _, r := range m.rows {
		r := r
		out = append(out, &r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memPosts) Update(ctx context.Context, p *models.Post, expected int64) (*models.Post, error) {
	tag, _ := m.UpdateIfVersion(ctx, p, expected)
	if tag.RowsAffected() == 0 {
		return nil, utils.ErrRowVersionConflict
	}
	return m.GetByID(ctx, p.ID)
}

func (m *memPosts) UpdateIfVersion(_ context.Context, p *models.Post, expected int64) (pgconn.CommandTag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.rows[p.ID]
	if !ok || cur.Version != expected {
		return pgconn.CommandTag("UPDATE 0"), nil
	}
	cur.Content = p.Content
	cur.Version = expected + 1
	m.rows[p.ID] = cur
	return pgconn.CommandTag("UPDATE 1"), nil
}

func (m *memPosts) UpdateWithRetry(context.Context, uuid.UUID, func(*models.Post) error) error {
	return nil
}

func (m *memPosts) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	return nil
}

/* ------------------------------------------------------------------
   Item replenishments
------------------------------------------------------------------ */

type memReplenishments struct {
	rows map[uuid.UUID]models.ItemReplenishment
}

var _ repositories.ItemReplenishmentRepository = (*memReplenishments)(nil)

func newMemReplenishments() *memReplenishments {
	return &memReplenishments{rows: map[uuid.UUID]models.ItemReplenishment{}}
}

func (m *memReplenishments) Create(_ context.Context, r *models.ItemReplenishment) (*models.ItemReplenishment, error) {
	for _, x := range m.rows {
		if x.ItemID == r.ItemID && x.SourcePlaceID == r.SourcePlaceID && x.DestinationPlaceID == r.DestinationPlaceID {
			return nil, &pgconn.PgError{Code: "23505"}
		}
	}
	row := *r
	row.ID = uuid.New()
	m.rows[row.ID] = row
	return &row, nil
}

func (m *memReplenishments) GetByID(_ context.Context, id uuid.UUID) (*models.ItemReplenishment, error) {
	r, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (m *memReplenishments) filter(keep func(models.ItemReplenishment) bool) []*models.ItemReplenishment {
	var out []*models.ItemReplenishment
	for _, r := range m.rows {
		if keep(r) {
			r := r
			out = append(out, &r)
		}
	}
	return out
}

func (m *memReplenishments) ListAll(context.Context) ([]*models.ItemReplenishment, error) {
	return m.filter(func(models.ItemReplenishment) bool { return true }), nil
}

func (m *memReplenishments) ListBySource(_ context.Context, id uuid.UUID) ([]*models.ItemReplenishment, error) {
	return m.filter(func(r models.ItemReplenishment) bool { return r.SourcePlaceID == id }), nil
}

func (m *memReplenishments) ListByDestination(_ context.Context, id uuid.UUID) ([]*models.ItemReplenishment, error) {
	return m.filter(func(r models.ItemReplenishment) bool { return r.DestinationPlaceID == id }), nil
}

func (m *memReplenishments) ListByItem(_ context.Context, id uuid.UUID) ([]*models.ItemReplenishment, error) {
	return m.filter(func(r models.ItemReplenishment) bool { return r.ItemID == id }), nil
}

func (m *memReplenishments) Update(ctx context.Context, r *models.ItemReplenishment, expected int64) (*models.ItemReplenishment, error) {
	tag, _ := m.UpdateIfVersion(ctx, r, expected)
	if tag.RowsAffected() == 0 {
		return nil, utils.ErrRowVersionConflict
	}
	return m.GetByID(ctx, r.ID)
}

func (m *memReplenishments) UpdateIfVersion(_ context.Context, r *models.ItemReplenishment, expected int64) (pgconn.CommandTag, error) {
	cur, ok := m.rows[r.ID]
	if !ok || cur.Version != expected {
		return pgconn.CommandTag("UPDATE 0"), nil
	}
	row := *r
	row.Version = expected + 1
	m.rows[r.ID] = row
	return pgconn.CommandTag("UPDATE 1"), nil
}

func (m *memReplenishments) UpdateWithRetry(context.Context, uuid.UUID, func(*models.ItemReplenishment) error) error {
	return nil
}

func (m *memReplenishments) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.rows, id)
	return nil
}
