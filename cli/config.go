package cli

import (
	"regexp"

	"github.com/spf13/cobra"
)

var passwordPattern = regexp.MustCompile(`(password=|://[^:/@]+:)[^ @]+`)

// NewConfigCommand groups the configuration commands.
func NewConfigCommand(load configLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}

	cmd.AddCommand(newConfigShowCommand(load))

	return cmd
}

func newConfigShowCommand(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the configuration after defaults, files and environment are merged",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			printf(cmd, "debug:                    %t\n", cfg.Debug)
			printf(cmd, "server.host:              %s\n", cfg.Server.Host)
			printf(cmd, "server.port:              %d\n", cfg.Server.Port)
			printf(cmd, "server.mode:              %s\n", cfg.Server.Mode)
			printf(cmd, "server.read_timeout:      %s\n", cfg.Server.ReadTimeout)
			printf(cmd, "server.write_timeout:     %s\n", cfg.Server.WriteTimeout)
			printf(cmd, "server.shutdown_timeout:  %s\n", cfg.Server.ShutdownTimeout)
			printf(cmd, "database.driver:          %s\n", cfg.Database.Driver)
			printf(cmd, "database.dsn:             %s\n", redact(cfg.Database.DSN))
			printf(cmd, "database.auto_migrate:    %t\n", cfg.Database.AutoMigrate)
			printf(cmd, "database.max_open_conns:  %d\n", cfg.Database.MaxOpenConns)
			printf(cmd, "database.max_idle_conns:  %d\n", cfg.Database.MaxIdleConns)
			return nil
		},
	}
}

// redact hides passwords in postgres DSNs.
func redact(dsn string) string {
	return passwordPattern.ReplaceAllString(dsn, "${1}****")
}
