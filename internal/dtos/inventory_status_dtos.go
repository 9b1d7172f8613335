package dtos

import (
	"github.com/google/uuid"
	"github.com/yossyi0323/App/internal/models"
)

// InventoryStatusRequest serves create, update and bulk save. Without an ID
// it is a create and needs businessDate and itemId; with an ID it is a
// guarded update and needs version.
type InventoryStatusRequest struct {
	ID                   *uuid.UUID           `json:"id,omitempty"`
	BusinessDate         *models.BusinessDate `json:"businessDate,omitempty" validate:"required_without=ID"`
	ItemID               *uuid.UUID           `json:"itemId,omitempty" validate:"required_without=ID"`
	InventoryCheckStatus *string              `json:"inventoryCheckStatus,omitempty" validate:"omitempty,oneof=01 02"`
	ReplenishmentStatus  *string              `json:"replenishmentStatus,omitempty" validate:"omitempty,oneof=01 02 99"`
	PreparationStatus    *string              `json:"preparationStatus,omitempty" validate:"omitempty,oneof=01 02 99"`
	OrderRequestStatus   *string              `json:"orderRequestStatus,omitempty" validate:"omitempty,oneof=01 02 99"`
	InventoryCount       *float64             `json:"inventoryCount,omitempty" validate:"omitempty,gte=0"`
	ReplenishmentCount   *float64             `json:"replenishmentCount,omitempty" validate:"omitempty,gte=0"`
	ReplenishmentNote    *string              `json:"replenishmentNote,omitempty" validate:"omitempty,max=1000"`
	Version              *int64               `json:"version,omitempty" validate:"required_with=ID"`
}

// InventoryStatusFilter narrows GET /api/inventory-status. DestinationID
// wins over SourceID when both are given.
type InventoryStatusFilter struct {
	BusinessDate  models.BusinessDate
	DestinationID *uuid.UUID
	SourceID      *uuid.UUID
}

type PrepareResponse struct {
	BusinessDate models.BusinessDate `json:"businessDate"`
	Created      int64               `json:"created"`
}
