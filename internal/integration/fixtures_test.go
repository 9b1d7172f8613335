//go:build (dev_test || staging_test) && integration

package integration

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/yossyi0323/App/internal/models"
)

// route is an item with one source and one destination place.
type route struct {
	Item          *models.Item
	Source        *models.Place
	Destination   *models.Place
	Replenishment *models.ItemReplenishment
}

// newRoute creates a destination, a source and an item routed between them,
// and removes all of it when the test ends.
func newRoute(t *testing.T, name string) route {
	t.Helper()
	ctx := h.Ctx

	dest := &models.Place{ID: uuid.New(), Type: models.PlaceTypeDestination, Name: name + " dest"}
	src := &models.Place{ID: uuid.New(), Type: models.PlaceTypeSource, Name: name + " src"}
	require.NoError(t, h.Places.Create(ctx, dest))
	require.NoError(t, h.Places.Create(ctx, src))

	it := &models.Item{ID: uuid.New(), Name: name, Unit: "pc"}
	require.NoError(t, h.Items.Create(ctx, it))

	ir, err := h.Replenishments.Create(ctx, &models.ItemReplenishment{
		ItemID:             it.ID,
		SourcePlaceID:      src.ID,
		DestinationPlaceID: dest.ID,
		ReplenishmentType:  models.ReplenishmentTypeMove,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		// item deletion cascades to routes and inventory rows
		_, _ = h.DB.Exec(ctx, `DELETE FROM item WHERE id=$1`, it.ID)
		_, _ = h.DB.Exec(ctx, `DELETE FROM place WHERE id=$1 OR id=$2`, dest.ID, src.ID)
	})
	return route{Item: it, Source: src, Destination: dest, Replenishment: ir}
}

func routedItem(t *testing.T, name string) *models.Item {
	t.Helper()
	return newRoute(t, name).Item
}

func suffix() string {
	return uuid.NewString()[:8]
}

// ids collects one uuid per row so assertions can ignore rows other tests left.
func ids[T any](rows []T, id func(T) uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		out = append(out, id(r))
	}
	return out
}
