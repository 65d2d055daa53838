package cli

import (
	"context"

	"github.com/kutbudev/listkeeper/pkg/app"
	"github.com/kutbudev/listkeeper/pkg/config"
	"github.com/spf13/cobra"
)

// newServeCommand runs the HTTP server until interrupted.
func newServeCommand(load configLoader) *cobra.Command {
	var (
		host        string
		port        int
		autoMigrate bool
		debug       bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mutate := func(cfg *config.Config) {
				if cmd.Flags().Changed("host") {
					cfg.Server.Host = host
				}
				if cmd.Flags().Changed("port") {
					cfg.Server.Port = port
				}
				if cmd.Flags().Changed("auto-migrate") {
					cfg.Database.AutoMigrate = autoMigrate
				}
				if cmd.Flags().Changed("debug") {
					cfg.Debug = debug
					if debug {
						cfg.Server.Mode = "debug"
					}
				}
			}
			return withApp(load, mutate, func(ctx context.Context, a *app.App) error {
				return a.Serve(ctx)
			})
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "listen host (overrides server.host)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides server.port)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "create missing tables before serving")
	cmd.Flags().BoolVar(&debug, "debug", false, "log SQL statements and run gin in debug mode")

	return cmd
}
