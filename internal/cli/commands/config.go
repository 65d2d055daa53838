package commands

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/kutbudev/listkeeper/internal/config"
	"github.com/urfave/cli/v2"
)

// NewConfigCommand manages ~/.listkeeper/config.json.
func NewConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configure the listkeeper client",
		Subcommands: []*cli.Command{
			{
				Name:      "set-url",
				Usage:     "Set the API base URL, e.g. http://localhost:8080/api/v1",
				ArgsUsage: "[url]",
				Action: func(c *cli.Context) error {
					raw := strings.TrimSpace(c.Args().First())
					if raw == "" {
						return fmt.Errorf("URL is required")
					}
					u, err := url.Parse(raw)
					if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
						return fmt.Errorf("invalid URL %q: expected http(s)://host[:port]/path", raw)
					}

					cfg, err := config.LoadConfig()
					if err != nil {
						return fmt.Errorf("failed to load config: %w", err)
					}
					cfg.BaseURL = strings.TrimRight(raw, "/")
					if err := config.SaveConfig(cfg); err != nil {
						return fmt.Errorf("failed to save config: %w", err)
					}

					ok(c, "API URL set to %s", cfg.BaseURL)
					return nil
				},
			},
			{
				Name:  "show",
				Usage: "Show the API base URL in effect",
				Action: func(c *cli.Context) error {
					path, err := config.GetConfigPath()
					if err != nil {
						return err
					}
					fmt.Fprintf(out(c), "Config file: %s\n", path)
					fmt.Fprintf(out(c), "API URL:     %s\n", newClient(c).BaseURL)
					return nil
				},
			},
		},
	}
}
