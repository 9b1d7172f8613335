package controllers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/yossyi0323/App/internal/dtos"
	"github.com/yossyi0323/App/internal/services"
	"github.com/yossyi0323/App/internal/utils"
)

type ItemReplenishmentController struct {
	replenishmentService *services.ItemReplenishmentService
	validate             *validator.Validate
}

func NewItemReplenishmentController(rs *services.ItemReplenishmentService) *ItemReplenishmentController {
	return &ItemReplenishmentController{replenishmentService: rs, validate: newValidator()}
}

// GET /api/item-replenishments[?sourceId|destinationId|itemId]
func (c *ItemReplenishmentController) ListHandler(w http.ResponseWriter, r *http.Request) {
	var (
		f   dtos.ItemReplenishmentFilter
		err error
	)
	if f.SourceID, err = queryUUID(r, "sourceId"); err != nil {
		respondBadQuery(w, err)
		return
	}
	if f.DestinationID, err = queryUUID(r, "destinationId"); err != nil {
		respondBadQuery(w, err)
		return
	}
	if f.ItemID, err = queryUUID(r, "itemId"); err != nil {
		respondBadQuery(w, err)
		return
	}

	out, err := c.replenishmentService.List(r.Context(), f)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// POST /api/item-replenishments
func (c *ItemReplenishmentController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateItemReplenishmentRequest
	if !decodeJSON(w, r, &req) || !validateBody(w, c.validate, req) {
		return
	}
	created, err := c.replenishmentService.Create(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.Logger.WithField("itemReplenishmentID", created.ID).Info("Item replenishment created")
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// GET /api/item-replenishments/{id}
func (c *ItemReplenishmentController) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	ir, err := c.replenishmentService.Get(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, ir)
}

// PUT /api/item-replenishments/{id}
func (c *ItemReplenishmentController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateItemReplenishmentRequest
	if !decodeJSON(w, r, &req) || !validateBody(w, c.validate, req) {
		return
	}
	updated, err := c.replenishmentService.Update(r.Context(), id, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DELETE /api/item-replenishments/{id}
func (c *ItemReplenishmentController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	if err := c.replenishmentService.Delete(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondNoContent(w)
}
