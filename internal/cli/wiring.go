package cli

import (
	"github.com/yossyi0323/App/internal/app"
	"github.com/yossyi0323/App/internal/config"
	"github.com/yossyi0323/App/internal/repositories"
	"github.com/yossyi0323/App/internal/services"
	"github.com/yossyi0323/App/internal/utils"
)

type repos struct {
	places         repositories.PlaceRepository
	items          repositories.ItemRepository
	replenishments repositories.ItemReplenishmentRepository
	inventory      repositories.InventoryStatusRepository
	posts          repositories.PostRepository
}

func newRepos(db repositories.DB) repos {
	return repos{
		places:         repositories.NewPlaceRepository(db),
		items:          repositories.NewItemRepository(db),
		replenishments: repositories.NewItemReplenishmentRepository(db),
		inventory:      repositories.NewInventoryStatusRepository(db),
		posts:          repositories.NewPostRepository(db),
	}
}

func (r repos) seed() app.SeedRepos {
	return app.SeedRepos{
		Places:         r.places,
		Items:          r.items,
		Replenishments: r.replenishments,
		Inventory:      r.inventory,
	}
}

func newInventoryService(cfg *config.Config, r repos) *services.InventoryStatusService {
	calendar := utils.NewBusinessCalendar(cfg.BusinessLocation, cfg.RegularClosingDays)
	return services.NewInventoryStatusService(cfg, r.inventory, calendar)
}

// bootstrap loads config and connects. The returned func closes the pool.
func bootstrap() (*config.Config, *app.App, func(), error) {
	cfg := config.LoadConfig()
	application, err := app.NewApp(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, application, application.Close, nil
}
