package cli

import (
	"context"

	"github.com/kutbudev/listkeeper/pkg/app"
	"github.com/spf13/cobra"
)

// newMigrateCommand creates the lists and items tables.
func newMigrateCommand(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Long:  `Creates the lists and items tables. Run once before the first serve, and again after upgrades.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(load, nil, func(ctx context.Context, a *app.App) error {
				if err := a.Migrate(ctx); err != nil {
					return err
				}
				printf(cmd, "Schema is up to date (%s: %s)\n", a.DB.Driver(), a.Config.Database.DSN)
				return nil
			})
		},
	}
}
