package cli

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/yossyi0323/App/internal/controllers"
	"github.com/yossyi0323/App/internal/routes"
)

type handlers struct {
	health            *controllers.HealthController
	place             *controllers.PlaceController
	item              *controllers.ItemController
	itemReplenishment *controllers.ItemReplenishmentController
	inventoryStatus   *controllers.InventoryStatusController
	post              *controllers.PostController
}

// newRouter registers fixed paths before their {id} siblings; mux matches in
// registration order.
func newRouter(h handlers) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc(routes.Health, h.health.HealthCheckHandler).Methods(http.MethodGet)

	// Places
	router.HandleFunc(routes.Places, h.place.ListPlacesHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.PlacesSource, h.place.ListSourcesHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.PlacesDestination, h.place.ListDestinationsHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.PlacesByType, h.place.ListPlacesByTypeHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.PlaceByID, h.place.GetPlaceHandler).Methods(http.MethodGet)

	// Items
	router.HandleFunc(routes.Items, h.item.ListItemsHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.ItemByID, h.item.GetItemHandler).Methods(http.MethodGet)

	// Replenishment routes
	router.HandleFunc(routes.ItemReplenishments, h.itemReplenishment.ListHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.ItemReplenishments, h.itemReplenishment.CreateHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.ItemReplenishmentByID, h.itemReplenishment.GetHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.ItemReplenishmentByID, h.itemReplenishment.UpdateHandler).Methods(http.MethodPut)
	router.HandleFunc(routes.ItemReplenishmentByID, h.itemReplenishment.DeleteHandler).Methods(http.MethodDelete)

	// Inventory status
	router.HandleFunc(routes.InventoryStatus, h.inventoryStatus.ListHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.InventoryStatus, h.inventoryStatus.SaveHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.InventoryStatusPending, h.inventoryStatus.ListPendingHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.InventoryStatusBulk, h.inventoryStatus.SaveBulkHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.InventoryStatusPrepare, h.inventoryStatus.PrepareHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.InventoryStatusByID, h.inventoryStatus.GetHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.InventoryStatusByID, h.inventoryStatus.UpdateHandler).Methods(http.MethodPut)
	router.HandleFunc(routes.InventoryStatusByID, h.inventoryStatus.DeleteHandler).Methods(http.MethodDelete)

	// Posts
	router.HandleFunc(routes.Posts, h.post.ListPostsHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Posts, h.post.CreatePostHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.PostByID, h.post.GetPostHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.PostByID, h.post.UpdatePostHandler).Methods(http.MethodPut)
	router.HandleFunc(routes.PostByID, h.post.DeletePostHandler).Methods(http.MethodDelete)

	return router
}
