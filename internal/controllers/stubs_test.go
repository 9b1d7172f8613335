package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/yossyi0323/App/internal/models"
	"github.com/yossyi0323/App/internal/repositories"
	"github.com/yossyi0323/App/internal/utils"
)

// stubPosts implements only what the post handlers under test reach.
type stubPosts struct {
	repositories.PostRepository
	rows map[uuid.UUID]models.Post
}

func newStubPosts() *stubPosts { return &stubPosts{rows: map[uuid.UUID]models.Post{}} }

func (s *stubPosts) Create(_ context.Context, p *models.Post) (*models.Post, error) {
	row := *p
	row.ID = uuid.New()
	s.rows[row.ID] = row
	return &row, nil
}

func (s *stubPosts) GetByID(_ context.Context, id uuid.UUID) (*models.Post, error) {
	r, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (s *stubPosts) Update(_ context.Context, p *models.Post, expected int64) (*models.Post, error) {
	cur, ok := s.rows[p.ID]
	if !ok || cur.Version != expected {
		return nil, utils.ErrRowVersionConflict
	}
	cur.Content = p.Content
	cur.Version++
	s.rows[p.ID] = cur
	return &cur, nil
}

func (s *stubPosts) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.rows, id)
	return nil
}

// stubInventory panics through the nil embedded interface on any method it
// does not override.
type stubInventory struct {
	repositories.InventoryStatusRepository
	rows map[uuid.UUID]models.InventoryStatus
}

func (s *stubInventory) GetByID(_ context.Context, id uuid.UUID) (*models.InventoryStatus, error) {
	r, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (s *stubInventory) Update(_ context.Context, st *models.InventoryStatus, expected int64) (*models.InventoryStatus, error) {
	cur, ok := s.rows[st.ID]
	if !ok || cur.Version != expected {
		return nil, utils.ErrRowVersionConflict
	}
	row := *st
	row.Version = expected + 1
	s.rows[st.ID] = row
	return &row, nil
}

func (s *stubInventory) ListByBusinessDate(_ context.Context, d models.BusinessDate) ([]*models.InventoryStatus, error) {
	var out []*models.InventoryStatus
	for _, r := range s.rows {
		if r.BusinessDate == d {
			r := r
			out = append(out, &r)
		}
	}
	return out, nil
}

func (s *stubInventory) CreateDefaultsForDate(context.Context, models.BusinessDate) (int64, error) {
	return 3, nil
}

// serve routes a single request through a one-route mux router so path
// variables resolve the way they do in the server.
func serve(pattern, method string, h http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc(pattern, h).Methods(method)
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
