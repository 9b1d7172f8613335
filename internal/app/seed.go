package app

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/google/uuid"
	"github.com/yossyi0323/App/internal/models"
	"github.com/yossyi0323/App/internal/repositories"
	"github.com/yossyi0323/App/internal/utils"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

type seedFixtures struct {
	Places         []seedPlace         `yaml:"places"`
	Items          []seedItem          `yaml:"items"`
	Replenishments []seedReplenishment `yaml:"replenishments"`
	Inventory      []seedInventory     `yaml:"inventory"`
}

type seedPlace struct {
	ID           uuid.UUID        `yaml:"id"`
	Type         models.PlaceType `yaml:"type"`
	Name         string           `yaml:"name"`
	DisplayOrder int              `yaml:"displayOrder"`
}

type seedItem struct {
	ID          uuid.UUID `yaml:"id"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Unit        string    `yaml:"unit"`
	PatternType string    `yaml:"patternType"`
}

type seedReplenishment struct {
	ID                      uuid.UUID                `yaml:"id"`
	ItemID                  uuid.UUID                `yaml:"itemId"`
	SourcePlaceID           uuid.UUID                `yaml:"sourcePlaceId"`
	DestinationPlaceID      uuid.UUID                `yaml:"destinationPlaceId"`
	ReplenishmentType       models.ReplenishmentType `yaml:"replenishmentType"`
	OrderRequestDestination string                   `yaml:"orderRequestDestination"`
}

type seedInventory struct {
	ItemID              uuid.UUID             `yaml:"itemId"`
	InventoryCount      float64               `yaml:"inventoryCount"`
	ReplenishmentCount  float64               `yaml:"replenishmentCount"`
	ReplenishmentStatus models.ProgressStatus `yaml:"replenishmentStatus"`
	PreparationStatus   models.ProgressStatus `yaml:"preparationStatus"`
}

// SeedRepos groups the repositories the seeder writes through.
type SeedRepos struct {
	Places         repositories.PlaceRepository
	Items          repositories.ItemRepository
	Replenishments repositories.ItemReplenishmentRepository
	Inventory      repositories.InventoryStatusRepository
}

func loadSeedFixtures() (*seedFixtures, error) {
	var f seedFixtures
	if err := yaml.Unmarshal(seedYAML, &f); err != nil {
		return nil, fmt.Errorf("parse seed fixtures: %w", err)
	}
	return &f, nil
}

/* ------------------------------------------------------------------
   Seed sample master data and one business date of inventory
------------------------------------------------------------------ */
func SeedAllTestData(ctx context.Context, repos SeedRepos, date models.BusinessDate) error {
	f, err := loadSeedFixtures()
	if err != nil {
		return err
	}

	for _, p := range f.Places {
		err := repos.Places.Create(ctx, &models.Place{ID: p.ID, Type: p.Type, Name: p.Name, DisplayOrder: p.DisplayOrder})
		if err := skipExisting("place", p.ID, err); err != nil {
			return err
		}
	}
	for _, it := range f.Items {
		err := repos.Items.Create(ctx, &models.Item{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Unit:        it.Unit,
			PatternType: it.PatternType,
		})
		if err := skipExisting("item", it.ID, err); err != nil {
			return err
		}
	}
	for _, r := range f.Replenishments {
		_, err := repos.Replenishments.Create(ctx, &models.ItemReplenishment{
			ID:                      r.ID,
			ItemID:                  r.ItemID,
			SourcePlaceID:           r.SourcePlaceID,
			DestinationPlaceID:      r.DestinationPlaceID,
			ReplenishmentType:       r.ReplenishmentType,
			OrderRequestDestination: r.OrderRequestDestination,
		})
		if err := skipExisting("item replenishment", r.ID, err); err != nil {
			return err
		}
	}

	n, err := repos.Inventory.CreateDefaultsForDate(ctx, date)
	if err != nil {
		return fmt.Errorf("create inventory rows for %s: %w", date, err)
	}
	utils.Logger.Infof("Seeded %d inventory status rows for %s", n, date)

	rows, err := repos.Inventory.ListByBusinessDate(ctx, date)
	if err != nil {
		return fmt.Errorf("list inventory rows for %s: %w", date, err)
	}
	byItem := make(map[uuid.UUID]*models.InventoryStatus, len(rows))
	for _, row := range rows {
		byItem[row.ItemID] = row
	}
	for _, inv := range f.Inventory {
		row, ok := byItem[inv.ItemID]
		if !ok {
			utils.Logger.Warnf("No inventory row for seeded item %s on %s; skipping counts.", inv.ItemID, date)
			continue
		}
		if err := repos.Inventory.UpdateWithRetry(ctx, row.ID, func(stored *models.InventoryStatus) error {
			stored.InventoryCount = inv.InventoryCount
			stored.ReplenishmentCount = inv.ReplenishmentCount
			if inv.ReplenishmentStatus != "" {
				stored.ReplenishmentStatus = inv.ReplenishmentStatus
			}
			if inv.PreparationStatus != "" {
				stored.PreparationStatus = inv.PreparationStatus
			}
			return nil
		}); err != nil {
			return fmt.Errorf("update seeded inventory row %s: %w", row.ID, err)
		}
	}
	utils.Logger.Infof("Seed data ready for business date %s", date)
	return nil
}

func skipExisting(kind string, id uuid.UUID, err error) error {
	switch {
	case err == nil:
		utils.Logger.Infof("Created seed %s id=%s", kind, id)
		return nil
	case utils.IsUniqueViolation(err):
		utils.Logger.Infof("Seed %s already present (id=%s); skipping.", kind, id)
		return nil
	default:
		return fmt.Errorf("insert seed %s %s: %w", kind, id, err)
	}
}
