package controllers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/yossyi0323/App/internal/models"
	"github.com/yossyi0323/App/internal/services"
	"github.com/yossyi0323/App/internal/utils"
)

type PlaceController struct {
	placeService *services.PlaceService
}

func NewPlaceController(ps *services.PlaceService) *PlaceController {
	return &PlaceController{placeService: ps}
}

// GET /api/places
func (c *PlaceController) ListPlacesHandler(w http.ResponseWriter, r *http.Request) {
	places, err := c.placeService.ListAll(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, places)
}

// GET /api/places/{id}
func (c *PlaceController) GetPlaceHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	place, err := c.placeService.Get(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, place)
}

// GET /api/places/type/{type}
func (c *PlaceController) ListPlacesByTypeHandler(w http.ResponseWriter, r *http.Request) {
	placeType := models.PlaceType(mux.Vars(r)["type"])
	if placeType != models.PlaceTypeDestination && placeType != models.PlaceTypeSource {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation,
			"Place type must be one of [01 02]", nil)
		return
	}
	places, err := c.placeService.ListByType(r.Context(), placeType)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, places)
}

// GET /api/places/source
func (c *PlaceController) ListSourcesHandler(w http.ResponseWriter, r *http.Request) {
	places, err := c.placeService.ListSources(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, places)
}

// GET /api/places/destination
func (c *PlaceController) ListDestinationsHandler(w http.ResponseWriter, r *http.Request) {
	places, err := c.placeService.ListDestinations(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, places)
}
