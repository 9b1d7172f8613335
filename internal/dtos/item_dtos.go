package dtos

import "github.com/google/uuid"

// ItemFilter mirrors the GET /api/items query. The first non-empty field in
// declaration order is applied.
type ItemFilter struct {
	PlaceID       *uuid.UUID
	DestinationID *uuid.UUID
	SourceID      *uuid.UUID
	Name          string
}
