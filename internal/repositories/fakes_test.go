package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/yossyi0323/App/internal/models"
)

// memPosts emulates a versioned table: a compare-and-swap on version under a
// mutex, like a single-row UPDATE ... WHERE id AND version.
type memPosts struct {
	mu   sync.Mutex
	rows map[string]models.Post
}

func newMemPosts() *memPosts {
	return &memPosts{rows: map[string]models.Post{}}
}

func (m *memPosts) insert(content string) *models.Post {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := models.Post{ID: uuid.New(), Content: content}
	m.rows[p.ID.String()] = p
	return &p
}

func (m *memPosts) get(id string) *models.Post {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok {
		return nil
	}
	return &p
}

func (m *memPosts) updateIfVersion(_ context.Context, p *models.Post, expected int64) (pgconn.CommandTag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.rows[p.GetID()]
	if !ok || cur.Version != expected {
		return pgconn.CommandTag("UPDATE 0"), nil
	}
	cur.Content = p.Content
	cur.Version++
	m.rows[p.GetID()] = cur
	return pgconn.CommandTag("UPDATE 1"), nil
}

// fakeRow carries the id QueryRow was called with; scan functions in tests
// resolve it against memPosts.
type fakeRow struct {
	id string
}

func (fakeRow) Scan(...any) error { return errors.New("fakeRow: use a test scanner") }

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(context.Context) error   { t.committed = true; return nil }
func (t *fakeTx) Rollback(context.Context) error { t.rolledBack = true; return nil }

// fakeDB answers QueryRow with a fakeRow and records Exec statements.
type fakeDB struct {
	tx       *fakeTx
	beginErr error
	execs    []string
}

func (d *fakeDB) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	d.execs = append(d.execs, sql)
	return pgconn.CommandTag("DELETE 0"), nil
}

func (d *fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, fmt.Errorf("fakeDB: Query not supported")
}

func (d *fakeDB) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	id, _ := args[0].(string)
	return fakeRow{id: id}
}

func (d *fakeDB) Begin(context.Context) (pgx.Tx, error) {
	if d.beginErr != nil {
		return nil, d.beginErr
	}
	d.tx = &fakeTx{}
	return d.tx, nil
}

func newPostBase(db DB, store *memPosts) *BaseVersionedRepo[*models.Post] {
	return NewBaseRepo(db, "SELECT", func(row pgx.Row) (*models.Post, error) {
		return store.get(row.(fakeRow).id), nil
	})
}
