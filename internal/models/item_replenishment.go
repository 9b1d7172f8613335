package models

import (
	"time"

	"github.com/google/uuid"
)

type ReplenishmentType string

const (
	ReplenishmentTypeMove     ReplenishmentType = "01"
	ReplenishmentTypeCreation ReplenishmentType = "02"
)

// ItemReplenishment routes an item from a source place to a destination.
// Places and item are referenced by id only.
type ItemReplenishment struct {
	Versioned

	ID                      uuid.UUID         `json:"id"`
	ItemID                  uuid.UUID         `json:"itemId"`
	SourcePlaceID           uuid.UUID         `json:"sourcePlaceId"`
	DestinationPlaceID      uuid.UUID         `json:"destinationPlaceId"`
	ReplenishmentType       ReplenishmentType `json:"replenishmentType"`
	OrderRequestDestination string            `json:"orderRequestDestination"`
	CreatedAt               time.Time         `json:"createdAt"`
	UpdatedAt               time.Time         `json:"updatedAt"`
}

func (r *ItemReplenishment) GetID() string { return r.ID.String() }
