package dtos

import (
	"github.com/google/uuid"
	"github.com/yossyi0323/App/internal/models"
)

type CreateItemReplenishmentRequest struct {
	ItemID                  uuid.UUID                `json:"itemId" validate:"required"`
	SourcePlaceID           uuid.UUID                `json:"sourcePlaceId" validate:"required"`
	DestinationPlaceID      uuid.UUID                `json:"destinationPlaceId" validate:"required"`
	ReplenishmentType       models.ReplenishmentType `json:"replenishmentType" validate:"required,oneof=01 02"`
	OrderRequestDestination string                   `json:"orderRequestDestination" validate:"max=255"`
}

type UpdateItemReplenishmentRequest struct {
	ItemID                  uuid.UUID                `json:"itemId" validate:"required"`
	SourcePlaceID           uuid.UUID                `json:"sourcePlaceId" validate:"required"`
	DestinationPlaceID      uuid.UUID                `json:"destinationPlaceId" validate:"required"`
	ReplenishmentType       models.ReplenishmentType `json:"replenishmentType" validate:"required,oneof=01 02"`
	OrderRequestDestination string                   `json:"orderRequestDestination" validate:"max=255"`
	Version                 *int64                   `json:"version" validate:"required"`
}

type ItemReplenishmentFilter struct {
	SourceID      *uuid.UUID
	DestinationID *uuid.UUID
	ItemID        *uuid.UUID
}
