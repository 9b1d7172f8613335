package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/yossyi0323/App/internal/models"
	"github.com/yossyi0323/App/internal/repositories"
)

type PlaceService struct {
	placeRepo repositories.PlaceRepository
}

func NewPlaceService(placeRepo repositories.PlaceRepository) *PlaceService {
	return &PlaceService{placeRepo: placeRepo}
}

// ListAll orders by type then display order.
func (s *PlaceService) ListAll(ctx context.Context) ([]*models.Place, error) {
	places, err := s.placeRepo.ListAll(ctx)
	if err != nil {
		return nil, internalError("Failed to list places", err)
	}
	return nonNil(places), nil
}

func (s *PlaceService) ListByType(ctx context.Context, placeType models.PlaceType) ([]*models.Place, error) {
	places, err := s.placeRepo.ListByType(ctx, placeType)
	if err != nil {
		return nil, internalError("Failed to list places", err)
	}
	return nonNil(places), nil
}

func (s *PlaceService) ListSources(ctx context.Context) ([]*models.Place, error) {
	return s.ListByType(ctx, models.PlaceTypeSource)
}

func (s *PlaceService) ListDestinations(ctx context.Context) ([]*models.Place, error) {
	return s.ListByType(ctx, models.PlaceTypeDestination)
}

func (s *PlaceService) Get(ctx context.Context, id uuid.UUID) (*models.Place, error) {
	p, err := s.placeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, internalError("Failed to fetch place", err)
	}
	if p == nil {
		return nil, notFound("Place")
	}
	return p, nil
}

// nonNil makes empty results encode as [] rather than null.
func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
