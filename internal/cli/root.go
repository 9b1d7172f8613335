package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/yossyi0323/App/internal/config"
	"github.com/yossyi0323/App/internal/utils"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the operations-prepare binary.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Restaurant inventory preparation service",
		Long: `Serves the inventory preparation API: places, items, replenishment routes,
per-business-date inventory status and the anonymous post board.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			utils.InitLogger(config.AppName)
			if opts.Verbose {
				utils.Logger.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging (overrides LOG_LEVEL)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewPrepareCommand(opts))

	return cmd
}
