package controllers

import (
	"net/http"

	"github.com/yossyi0323/App/internal/dtos"
	"github.com/yossyi0323/App/internal/services"
	"github.com/yossyi0323/App/internal/utils"
)

type ItemController struct {
	itemService *services.ItemService
}

func NewItemController(is *services.ItemService) *ItemController {
	return &ItemController{itemService: is}
}

// GET /api/items[?placeId|destinationId|sourceId|name]
func (c *ItemController) ListItemsHandler(w http.ResponseWriter, r *http.Request) {
	var (
		f   dtos.ItemFilter
		err error
	)
	if f.PlaceID, err = queryUUID(r, "placeId"); err != nil {
		respondBadQuery(w, err)
		return
	}
	if f.DestinationID, err = queryUUID(r, "destinationId"); err != nil {
		respondBadQuery(w, err)
		return
	}
	if f.SourceID, err = queryUUID(r, "sourceId"); err != nil {
		respondBadQuery(w, err)
		return
	}
	f.Name = r.URL.Query().Get("name")

	items, err := c.itemService.List(r.Context(), f)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}

// GET /api/items/{id}
func (c *ItemController) GetItemHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	item, err := c.itemService.Get(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, item)
}
