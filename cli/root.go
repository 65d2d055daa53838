// Package cli holds the cobra commands of the listkeeper-server binary.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kutbudev/listkeeper/pkg/app"
	"github.com/kutbudev/listkeeper/pkg/config"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the listkeeper-server command tree.
func NewRootCommand(version string) *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:   "listkeeper-server",
		Short: "Web application for managing named to-do lists",
		Long: `listkeeper-server serves the to-do list web pages and the JSON API.

Create the schema once before the first start:
  listkeeper-server migrate
  listkeeper-server serve --port 8080`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default: ./config.yaml or ./config/config.yaml)")

	load := func() (*config.Config, error) {
		return config.Load(configFile)
	}

	root.AddCommand(newServeCommand(load))
	root.AddCommand(newMigrateCommand(load))
	root.AddCommand(NewConfigCommand(load))

	return root
}

type configLoader func() (*config.Config, error)

// withApp loads the configuration, opens the application and closes it when fn returns.
func withApp(load configLoader, mutate func(*config.Config), fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := load()
	if err != nil {
		return err
	}
	if mutate != nil {
		mutate(cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return fn(ctx, a)
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
