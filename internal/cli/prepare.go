package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yossyi0323/App/internal/models"
	"github.com/yossyi0323/App/internal/services"
)

// PrepareOptions holds flags for the prepare command.
type PrepareOptions struct {
	*RootOptions
	Date string
}

// NewPrepareCommand creates the prepare command, the one-shot form of the
// nightly job.
func NewPrepareCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PrepareOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:          "prepare",
		Short:        "Create default inventory rows for a business date",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, application, cleanup, err := bootstrap()
			if err != nil {
				return err
			}
			defer cleanup()

			svc := newInventoryService(cfg, newRepos(application.DB))
			date, err := resolveDate(opts.Date, svc)
			if err != nil {
				return err
			}
			res, err := svc.PrepareForDate(cmd.Context(), date)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: created %d rows\n", res.BusinessDate, res.Created)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Date, "date", "", "business date YYYY-MM-DD (default: next business date)")

	return cmd
}

// resolveDate parses raw, falling back to the next business date.
func resolveDate(raw string, svc *services.InventoryStatusService) (models.BusinessDate, error) {
	if raw == "" {
		return svc.NextBusinessDate()
	}
	d, err := models.ParseBusinessDate(raw)
	if err != nil {
		return models.BusinessDate{}, fmt.Errorf("--date: %w", err)
	}
	return d, nil
}
