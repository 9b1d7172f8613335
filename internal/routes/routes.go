package routes

const (
	Health = "/health"

	Places            = "/api/places"
	PlaceByID         = "/api/places/{id}"
	PlacesByType      = "/api/places/type/{type}"
	PlacesSource      = "/api/places/source"
	PlacesDestination = "/api/places/destination"

	Items    = "/api/items"
	ItemByID = "/api/items/{id}"

	ItemReplenishments    = "/api/item-replenishments"
	ItemReplenishmentByID = "/api/item-replenishments/{id}"

	InventoryStatus        = "/api/inventory-status"
	InventoryStatusPending = "/api/inventory-status/pending"
	InventoryStatusBulk    = "/api/inventory-status/bulk"
	InventoryStatusPrepare = "/api/inventory-status/prepare"
	InventoryStatusByID    = "/api/inventory-status/{id}"

	Posts    = "/api/posts"
	PostByID = "/api/posts/{id}"
)
