//go:build (dev_test || staging_test) && integration

package integration

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/yossyi0323/App/internal/models"
	"github.com/yossyi0323/App/internal/utils"
)

func inventoryItemID(s *models.InventoryStatus) uuid.UUID { return s.ItemID }
func itemID(i *models.Item) uuid.UUID { return i.ID }

func TestInventoryStatus_ListPending(t *testing.T) {
	ctx := h.Ctx
	open := routedItem(t, "pending-open-"+suffix())
	done := routedItem(t, "pending-done-"+suffix())
	date := models.NewBusinessDate(time.Now().AddDate(4, 0, 0))

	_, err := h.Inventory.Create(ctx, models.NewDefaultInventoryStatus(date, open.ID))
	require.NoError(t, err)

	finished := models.NewDefaultInventoryStatus(date, done.ID)
	finished.InventoryCheckStatus = models.InventoryCheckChecked
	_, err = h.Inventory.Create(ctx, finished)
	require.NoError(t, err)

	rows, err := h.Inventory.ListPending(ctx, date)
	require.NoError(t, err)
	got := ids(rows, inventoryItemID)
	require.Contains(t, got, open.ID)
	require.NotContains(t, got, done.ID)

	// a required follow-up makes a checked row pending again
	required := *finished
	required.PreparationStatus = models.ProgressRequired
	_, err = h.Inventory.Update(ctx, &required, 0)
	require.NoError(t, err)

	rows, err = h.Inventory.ListPending(ctx, date)
	require.NoError(t, err)
	require.Contains(t, ids(rows, inventoryItemID), done.ID)
}

func TestInventoryStatus_ListByDestinationAndSource(t *testing.T) {
	ctx := h.Ctx
	a := newRoute(t, "by-place-a-"+suffix())
	b := newRoute(t, "by-place-b-"+suffix())
	date := models.NewBusinessDate(time.Now().AddDate(4, 1, 0))

	for _, r := range []route{a, b} {
		_, err := h.Inventory.Create(ctx, models.NewDefaultInventoryStatus(date, r.Item.ID))
		require.NoError(t, err)
	}

	byDest, err := h.Inventory.ListByBusinessDateAndDestination(ctx, date, a.Destination.ID)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{a.Item.ID}, ids(byDest, inventoryItemID))
	require.NotNil(t, byDest[0].Item)
	require.Equal(t, a.Item.Name, byDest[0].Item.Name)

	bySource, err := h.Inventory.ListByBusinessDateAndSource(ctx, date, b.Source.ID)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{b.Item.ID}, ids(bySource, inventoryItemID))

	// a destination id is never a source
	none, err := h.Inventory.ListByBusinessDateAndSource(ctx, date, a.Destination.ID)
	require.NoError(t, err)
	require.Empty(t, none)

	otherDay, err := h.Inventory.ListByBusinessDateAndDestination(ctx, date.AddDays(1), a.Destination.ID)
	require.NoError(t, err)
	require.Empty(t, otherDay)
}

func TestItem_ListByPlace(t *testing.T) {
	ctx := h.Ctx
	a := newRoute(t, "list-by-place-"+suffix())

	for _, placeID := range []uuid.UUID{a.Source.ID, a.Destination.ID} {
		items, err := h.Items.ListByPlace(ctx, placeID)
		require.NoError(t, err)
		require.Equal(t, []uuid.UUID{a.Item.ID}, ids(items, itemID))
	}

	bySource, err := h.Items.ListBySource(ctx, a.Source.ID)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{a.Item.ID}, ids(bySource, itemID))

	wrongSide, err := h.Items.ListByDestination(ctx, a.Source.ID)
	require.NoError(t, err)
	require.Empty(t, wrongSide)

	unknown, err := h.Items.ListByPlace(ctx, uuid.New())
	require.NoError(t, err)
	require.Empty(t, unknown)
}

func TestItem_SearchByNameEscapesWildcards(t *testing.T) {
	ctx := h.Ctx
	sfx := suffix()
	literal := routedItem(t, "50%_off "+sfx)
	lookalike := routedItem(t, "50abcoff "+sfx)

	items, err := h.Items.SearchByName(ctx, utils.NormalizeText("50%_OFF "+sfx))
	require.NoError(t, err)
	got := ids(items, itemID)
	require.Contains(t, got, literal.ID)
	require.NotContains(t, got, lookalike.ID)

	items, err = h.Items.SearchByName(ctx, sfx)
	require.NoError(t, err)
	require.ElementsMatch(t, []uuid.UUID{literal.ID, lookalike.ID}, ids(items, itemID))
}

func TestItem_SearchByNameFoldsStoredNames(t *testing.T) {
	ctx := h.Ctx
	sfx := suffix()
	halfWidth := routedItem(t, "ﾄﾏﾄ "+sfx)
	fullWidth := routedItem(t, "トマト缶 "+sfx)

	for _, term := range []string{"トマト", "ﾄﾏﾄ"} {
		items, err := h.Items.SearchByName(ctx, utils.NormalizeText(term))
		require.NoError(t, err)
		got := ids(items, itemID)
		require.Contains(t, got, halfWidth.ID, "term %q", term)
		require.Contains(t, got, fullWidth.ID, "term %q", term)
	}

	stored, err := h.Items.GetByID(ctx, halfWidth.ID)
	require.NoError(t, err)
	require.Equal(t, "ﾄﾏﾄ "+sfx, stored.Name)
}

func TestItemReplenishment_GuardedUpdate(t *testing.T) {
	ctx := h.Ctx
	r := newRoute(t, "route-update-"+suffix())
	ir := r.Replenishment
	require.Equal(t, int64(0), ir.Version)

	w1 := *ir
	w1.ReplenishmentType = models.ReplenishmentTypeCreation
	w1.OrderRequestDestination = "central kitchen"
	updated, err := h.Replenishments.Update(ctx, &w1, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), updated.Version)
	require.Equal(t, models.ReplenishmentTypeCreation, updated.ReplenishmentType)
	require.Equal(t, "central kitchen", updated.OrderRequestDestination)

	stale := *ir
	stale.OrderRequestDestination = "stale"
	_, err = h.Replenishments.Update(ctx, &stale, 0)
	require.True(t, errors.Is(err, utils.ErrRowVersionConflict))

	stored, err := h.Replenishments.GetByID(ctx, ir.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), stored.Version)
	require.Equal(t, "central kitchen", stored.OrderRequestDestination)

	// source equal to destination is rejected by the table, not the version guard
	loop := *stored
	loop.SourcePlaceID = stored.DestinationPlaceID
	_, err = h.Replenishments.Update(ctx, &loop, 1)
	require.Error(t, err)
	require.False(t, errors.Is(err, utils.ErrRowVersionConflict))
}
