package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/yossyi0323/App/internal/dtos"
	"github.com/yossyi0323/App/internal/models"
	"github.com/yossyi0323/App/internal/repositories"
	"github.com/yossyi0323/App/internal/utils"
)

type ItemService struct {
	itemRepo repositories.ItemRepository
}

func NewItemService(itemRepo repositories.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

// List applies at most one filter: place, then destination, then source,
// then name.
func (s *ItemService) List(ctx context.Context, f dtos.ItemFilter) ([]*models.Item, error) {
	var (
		items []*models.Item
		err   error
	)
	name := utils.NormalizeText(f.Name)

	switch {
	case f.PlaceID != nil:
		items, err = s.itemRepo.ListByPlace(ctx, *f.PlaceID)
	case f.DestinationID != nil:
		items, err = s.itemRepo.ListByDestination(ctx, *f.DestinationID)
	case f.SourceID != nil:
		items, err = s.itemRepo.ListBySource(ctx, *f.SourceID)
	case name != "":
		items, err = s.itemRepo.SearchByName(ctx, name)
	default:
		items, err = s.itemRepo.ListAll(ctx)
	}
	if err != nil {
		return nil, internalError("Failed to list items", err)
	}
	return nonNil(items), nil
}

func (s *ItemService) Get(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	it, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, internalError("Failed to fetch item", err)
	}
	if it == nil {
		return nil, notFound("Item")
	}
	return it, nil
}
