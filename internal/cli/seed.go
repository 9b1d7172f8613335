package cli

import (
	"github.com/spf13/cobra"
	"github.com/yossyi0323/App/internal/app"
)

// SeedOptions holds flags for the seed command.
type SeedOptions struct {
	*RootOptions
	Date string
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeedOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert sample places, items and one day of inventory",
		Long: `Insert the sample fixtures. Rows that already exist are skipped, so the
command can be re-run. Inventory rows are created for --date, or for the next
business date when --date is omitted.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, application, cleanup, err := bootstrap()
			if err != nil {
				return err
			}
			defer cleanup()

			r := newRepos(application.DB)
			date, err := resolveDate(opts.Date, newInventoryService(cfg, r))
			if err != nil {
				return err
			}
			return app.SeedAllTestData(cmd.Context(), r.seed(), date)
		},
	}

	cmd.Flags().StringVar(&opts.Date, "date", "", "business date YYYY-MM-DD (default: next business date)")

	return cmd
}
