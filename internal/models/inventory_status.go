package models

import (
	"time"

	"github.com/google/uuid"
)

type InventoryCheckStatus string

const (
	InventoryCheckUnchecked InventoryCheckStatus = "01"
	InventoryCheckChecked   InventoryCheckStatus = "02"
)

// ProgressStatus is shared by the replenishment, preparation and order
// request columns.
type ProgressStatus string

const (
	ProgressRequired    ProgressStatus = "01"
	ProgressDone        ProgressStatus = "02"
	ProgressNotRequired ProgressStatus = "99"
)

// InventoryStatus is one item's stock check and follow-up work for a
// business date. Item is populated on reads only.
type InventoryStatus struct {
	Versioned

	ID                   uuid.UUID            `json:"id"`
	BusinessDate         BusinessDate         `json:"businessDate"`
	ItemID               uuid.UUID            `json:"itemId"`
	Item                 *Item                `json:"item,omitempty"`
	InventoryCheckStatus InventoryCheckStatus `json:"inventoryCheckStatus"`
	ReplenishmentStatus  ProgressStatus       `json:"replenishmentStatus"`
	PreparationStatus    ProgressStatus       `json:"preparationStatus"`
	OrderRequestStatus   ProgressStatus       `json:"orderRequestStatus"`
	InventoryCount       float64              `json:"inventoryCount"`
	ReplenishmentCount   float64              `json:"replenishmentCount"`
	ReplenishmentNote    string               `json:"replenishmentNote"`
	CreatedAt            time.Time            `json:"createdAt"`
	UpdatedAt            time.Time            `json:"updatedAt"`
}

func (s *InventoryStatus) GetID() string { return s.ID.String() }

// NewDefaultInventoryStatus is the row a business date starts with: nothing
// checked, nothing required.
func NewDefaultInventoryStatus(date BusinessDate, itemID uuid.UUID) *InventoryStatus {
	return &InventoryStatus{
		ID:                   uuid.New(),
		BusinessDate:         date,
		ItemID:               itemID,
		InventoryCheckStatus: InventoryCheckUnchecked,
		ReplenishmentStatus:  ProgressNotRequired,
		PreparationStatus:    ProgressNotRequired,
		OrderRequestStatus:   ProgressNotRequired,
	}
}

// IsPending reports whether anything is left to do for the row.
func (s *InventoryStatus) IsPending() bool {
	return s.InventoryCheckStatus == InventoryCheckUnchecked ||
		s.ReplenishmentStatus == ProgressRequired ||
		s.PreparationStatus == ProgressRequired ||
		s.OrderRequestStatus == ProgressRequired
}
