package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"github.com/yossyi0323/App/internal/app"
	"github.com/yossyi0323/App/internal/config"
	"github.com/yossyi0323/App/internal/constants"
	"github.com/yossyi0323/App/internal/controllers"
	"github.com/yossyi0323/App/internal/services"
	"github.com/yossyi0323/App/internal/utils"
)

// Always allowed unless cors_high_security is on.
const corsLowSecurityAllowedOriginLocalhost = "http://localhost:3000"

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Migrate bool
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:          "serve",
		Short:        "Run the HTTP API and the nightly prepare job",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Migrate, "migrate", false, "apply the schema before serving")

	return cmd
}

func runServe(parent context.Context, opts *ServeOptions) error {
	cfg, application, cleanup, err := bootstrap()
	if err != nil {
		return fmt.Errorf("failed to initialize %s: %w", config.AppName, err)
	}
	defer cleanup()

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.Migrate {
		if err := application.Migrate(ctx); err != nil {
			return err
		}
	}

	// Repositories
	r := newRepos(application.DB)

	// Services
	placeService := services.NewPlaceService(r.places)
	itemService := services.NewItemService(r.items)
	replenishmentService := services.NewItemReplenishmentService(r.replenishments)
	inventoryService := newInventoryService(cfg, r)
	postService := services.NewPostService(r.posts)

	if cfg.LDFlag_SeedDbWithTestData {
		date, err := inventoryService.NextBusinessDate()
		if err != nil {
			return err
		}
		if err := app.SeedAllTestData(ctx, r.seed(), date); err != nil {
			return fmt.Errorf("failed to seed test data: %w", err)
		}
	}

	// Controllers
	router := newRouter(handlers{
		health:            controllers.NewHealthController(application.DB),
		place:             controllers.NewPlaceController(placeService),
		item:              controllers.NewItemController(itemService),
		itemReplenishment: controllers.NewItemReplenishmentController(replenishmentService),
		inventoryStatus:   controllers.NewInventoryStatusController(inventoryService),
		post:              controllers.NewPostController(postService),
	})

	// Cron job setup
	c := cron.New(cron.WithLocation(time.UTC))
	if cfg.LDFlag_NightlyPrepareEnabled {
		_, err = c.AddFunc(constants.PrepareNextBusinessDateCronSpec, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), constants.PrepareNextBusinessDateJobTimeout)
			defer cancel()
			utils.Logger.Info("Starting prepare-next-business-date cron job...")
			if _, err := inventoryService.PrepareNextBusinessDate(jobCtx); err != nil {
				utils.Logger.WithError(err).Error("Failed to prepare next business date")
			}
		})
		if err != nil {
			return fmt.Errorf("failed to schedule prepare cron: %w", err)
		}
		c.Start()
		utils.Logger.Info("Scheduled prepare-next-business-date cron job")
	} else {
		utils.Logger.Warn("Nightly prepare disabled by flag")
	}
	defer func() { <-c.Stop().Done() }()

	co := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins(cfg),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           co.Handler(router),
		ReadHeaderTimeout: constants.ServerReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("%s failed to start: %w", cfg.AppName, err)
		}
		return nil
	case <-ctx.Done():
		utils.Logger.Info("Shutdown signal received; draining connections")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ServerShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	utils.Logger.Info("Server stopped")
	return nil
}

func allowedOrigins(cfg *config.Config) []string {
	origins := []string{cfg.AppUrl}
	if !cfg.LDFlag_CORSHighSecurity && cfg.AppUrl != corsLowSecurityAllowedOriginLocalhost {
		origins = append(origins, corsLowSecurityAllowedOriginLocalhost)
	}
	return origins
}
