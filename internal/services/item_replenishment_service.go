package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/yossyi0323/App/internal/dtos"
	"github.com/yossyi0323/App/internal/models"
	"github.com/yossyi0323/App/internal/repositories"
	"github.com/yossyi0323/App/internal/utils"
)

type ItemReplenishmentService struct {
	repo repositories.ItemReplenishmentRepository
}

func NewItemReplenishmentService(repo repositories.ItemReplenishmentRepository) *ItemReplenishmentService {
	return &ItemReplenishmentService{repo: repo}
}

func (s *ItemReplenishmentService) List(ctx context.Context, f dtos.ItemReplenishmentFilter) ([]*models.ItemReplenishment, error) {
	var (
		out []*models.ItemReplenishment
		err error
	)
	switch {
	case f.SourceID != nil:
		out, err = s.repo.ListBySource(ctx, *f.SourceID)
	case f.DestinationID != nil:
		out, err = s.repo.ListByDestination(ctx, *f.DestinationID)
	case f.ItemID != nil:
		out, err = s.repo.ListByItem(ctx, *f.ItemID)
	default:
		out, err = s.repo.ListAll(ctx)
	}
	if err != nil {
		return nil, internalError("Failed to list item replenishments", err)
	}
	return nonNil(out), nil
}

func (s *ItemReplenishmentService) Get(ctx context.Context, id uuid.UUID) (*models.ItemReplenishment, error) {
	ir, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, internalError("Failed to fetch item replenishment", err)
	}
	if ir == nil {
		return nil, notFound("Item replenishment")
	}
	return ir, nil
}

func (s *ItemReplenishmentService) Create(ctx context.Context, req dtos.CreateItemReplenishmentRequest) (*models.ItemReplenishment, error) {
	if req.SourcePlaceID == req.DestinationPlaceID {
		return nil, validationError("Source and destination must differ")
	}
	created, err := s.repo.Create(ctx, &models.ItemReplenishment{
		ItemID:                  req.ItemID,
		SourcePlaceID:           req.SourcePlaceID,
		DestinationPlaceID:      req.DestinationPlaceID,
		ReplenishmentType:       req.ReplenishmentType,
		OrderRequestDestination: req.OrderRequestDestination,
	})
	if err != nil {
		return nil, writeError("Item replenishment", err)
	}
	return created, nil
}

// Update replaces every field of the route if version still matches.
func (s *ItemReplenishmentService) Update(ctx context.Context, id uuid.UUID, req dtos.UpdateItemReplenishmentRequest) (*models.ItemReplenishment, error) {
	if req.SourcePlaceID == req.DestinationPlaceID {
		return nil, validationError("Source and destination must differ")
	}
	ir := &models.ItemReplenishment{
		ID:                      id,
		ItemID:                  req.ItemID,
		SourcePlaceID:           req.SourcePlaceID,
		DestinationPlaceID:      req.DestinationPlaceID,
		ReplenishmentType:       req.ReplenishmentType,
		OrderRequestDestination: req.OrderRequestDestination,
	}
	updated, err := s.repo.Update(ctx, ir, utils.Val(req.Version))
	if errors.Is(err, utils.ErrRowVersionConflict) {
		current, rerr := s.repo.GetByID(ctx, id)
		if rerr != nil {
			utils.Logger.WithError(rerr).WithField("item_replenishment_id", id).Warn("Failed to re-read item replenishment after version conflict")
		}
		return nil, versionConflict(current)
	}
	if err != nil {
		return nil, writeError("Item replenishment", err)
	}
	if updated == nil {
		return nil, notFound("Item replenishment")
	}
	return updated, nil
}

// Delete is idempotent.
func (s *ItemReplenishmentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return internalError("Failed to delete item replenishment", err)
	}
	return nil
}
