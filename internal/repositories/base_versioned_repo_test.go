package repositories

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yossyi0323/App/internal/models"
	"github.com/yossyi0323/App/internal/utils"
)

func TestUpdateChecked_Scenario(t *testing.T) {
	ctx := context.Background()
	store := newMemPosts()
	base := newPostBase(&fakeDB{}, store)

	p0 := store.insert("P0")
	require.Equal(t, int64(0), p0.Version)

	// v0 -> P1 succeeds, version 1
	p1, err := base.UpdateChecked(ctx, &models.Post{ID: p0.ID, Content: "P1"}, 0, store.updateIfVersion)
	require.NoError(t, err)
	assert.Equal(t, "P1", p1.Content)
	assert.Equal(t, int64(1), p1.Version)

	// stale v0 -> P2 conflicts and leaves the row alone
	_, err = base.UpdateChecked(ctx, &models.Post{ID: p0.ID, Content: "P2"}, 0, store.updateIfVersion)
	require.ErrorIs(t, err, utils.ErrRowVersionConflict)
	cur := store.get(p0.GetID())
	assert.Equal(t, "P1", cur.Content)
	assert.Equal(t, int64(1), cur.Version)

	// v1 -> P2 succeeds, version 2
	p2, err := base.UpdateChecked(ctx, &models.Post{ID: p0.ID, Content: "P2"}, 1, store.updateIfVersion)
	require.NoError(t, err)
	assert.Equal(t, "P2", p2.Content)
	assert.Equal(t, int64(2), p2.Version)
}

func TestUpdateChecked_MissingRowIsConflict(t *testing.T) {
	store := newMemPosts()
	base := newPostBase(&fakeDB{}, store)

	missing := &models.Post{Content: "x"}
	_, err := base.UpdateChecked(context.Background(), missing, 0, store.updateIfVersion)
	assert.ErrorIs(t, err, utils.ErrRowVersionConflict)
}

func TestUpdateChecked_ConcurrentSameVersion(t *testing.T) {
	const writers = 8
	ctx := context.Background()
	store := newMemPosts()
	base := newPostBase(&fakeDB{}, store)
	p := store.insert("start")

	var (
		wg        sync.WaitGroup
		wins      int64
		conflicts int64
		start     = make(chan struct{})
	)
	for n := 0; n < writers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := base.UpdateChecked(ctx, &models.Post{ID: p.ID, Content: "writer"}, 0, store.updateIfVersion)
			switch {
			case err == nil:
				atomic.AddInt64(&wins, 1)
			case assert.ErrorIs(t, err, utils.ErrRowVersionConflict):
				atomic.AddInt64(&conflicts, 1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int64(1), wins)
	assert.Equal(t, int64(writers-1), conflicts)
	assert.Equal(t, int64(1), store.get(p.GetID()).Version)
}

func TestWithRetry_ConvergesUnderContention(t *testing.T) {
	const writers = 3
	ctx := context.Background()
	store := newMemPosts()
	base := newPostBase(&fakeDB{}, store)
	p := store.insert("start")

	var wg sync.WaitGroup
	errCh := make(chan error, writers)
	for n := 0; n < writers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- base.UpdateWithRetry(ctx, p.GetID(), func(cur *models.Post) error {
				cur.Content += "+"
				return nil
			}, store.updateIfVersion)
		}()
	}
	wg.Wait()
	close(errCh)

	var succeeded int64
	for err := range errCh {
		if err == nil {
			succeeded++
			continue
		}
		require.ErrorIs(t, err, utils.ErrRowVersionConflict)
	}
	assert.Equal(t, succeeded, store.get(p.GetID()).Version)
}
