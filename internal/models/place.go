package models

import (
	"time"

	"github.com/google/uuid"
)

type PlaceType string

const (
	PlaceTypeDestination PlaceType = "01"
	PlaceTypeSource      PlaceType = "02"
)

// Place is a storage location. Destinations are where stock is used, sources
// are where it is replenished from.
type Place struct {
	ID           uuid.UUID `json:"id"`
	Type         PlaceType `json:"type"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
