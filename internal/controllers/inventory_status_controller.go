package controllers

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/yossyi0323/App/internal/dtos"
	"github.com/yossyi0323/App/internal/services"
	"github.com/yossyi0323/App/internal/utils"
)

type InventoryStatusController struct {
	inventoryService *services.InventoryStatusService
	validate         *validator.Validate
}

func NewInventoryStatusController(is *services.InventoryStatusService) *InventoryStatusController {
	return &InventoryStatusController{inventoryService: is, validate: newValidator()}
}

// GET /api/inventory-status?businessDate=YYYY-MM-DD[&destinationId|&sourceId]
func (c *InventoryStatusController) ListHandler(w http.ResponseWriter, r *http.Request) {
	var (
		f   dtos.InventoryStatusFilter
		err error
	)
	if f.BusinessDate, err = queryBusinessDate(r, true); err != nil {
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

	rows, err := c.inventoryService.List(r.Context(), f)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, rows)
}

// GET /api/inventory-status/pending?businessDate=YYYY-MM-DD
func (c *InventoryStatusController) ListPendingHandler(w http.ResponseWriter, r *http.Request) {
	date, err := queryBusinessDate(r, true)
	if err != nil {
		respondBadQuery(w, err)
		return
	}
	rows, err := c.inventoryService.ListPending(r.Context(), date)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, rows)
}

// POST /api/inventory-status
// Without an id the row is created; with one it is a guarded update.
func (c *InventoryStatusController) SaveHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.InventoryStatusRequest
	if !decodeJSON(w, r, &req) || !validateBody(w, c.validate, req) {
		return
	}
	saved, err := c.inventoryService.Save(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, saved)
}

// POST /api/inventory-status/bulk
func (c *InventoryStatusController) SaveBulkHandler(w http.ResponseWriter, r *http.Request) {
	logger := utils.Logger.WithField("handler", "SaveBulkHandler")

	var reqs []dtos.InventoryStatusRequest
	if !decodeJSON(w, r, &reqs) {
		return
	}
	if len(reqs) == 0 {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "At least one record is required", nil)
		return
	}
	for i, req := range reqs {
		if err := c.validate.Struct(req); err != nil {
			respondValidation(w, err, fmt.Sprintf("[%d].", i))
			return
		}
	}

	saved, err := c.inventoryService.SaveBulk(r.Context(), reqs)
	if err != nil {
		logger.WithError(err).Warn("Bulk save failed")
		utils.HandleAppError(w, err)
		return
	}
	logger.WithField("count", len(saved)).Info("Bulk save committed")
	utils.RespondWithJSON(w, http.StatusOK, saved)
}

// POST /api/inventory-status/prepare[?businessDate=YYYY-MM-DD]
// Defaults to the next business date.
func (c *InventoryStatusController) PrepareHandler(w http.ResponseWriter, r *http.Request) {
	date, err := queryBusinessDate(r, false)
	if err != nil {
		respondBadQuery(w, err)
		return
	}

	var res *dtos.PrepareResponse
	if date.IsZero() {
		res, err = c.inventoryService.PrepareNextBusinessDate(r.Context())
	} else {
		res, err = c.inventoryService.PrepareForDate(r.Context(), date)
	}
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, res)
}

// GET /api/inventory-status/{id}
func (c *InventoryStatusController) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	row, err := c.inventoryService.Get(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, row)
}

// PUT /api/inventory-status/{id}
func (c *InventoryStatusController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	var req dtos.InventoryStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = &id
	if !validateBody(w, c.validate, req) {
		return
	}
	saved, err := c.inventoryService.Save(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, saved)
}

// DELETE /api/inventory-status/{id}
func (c *InventoryStatusController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	if err := c.inventoryService.Delete(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondNoContent(w)
}
