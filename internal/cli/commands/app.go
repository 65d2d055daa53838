package commands

import (
	"github.com/urfave/cli/v2"
)

// NewApp assembles the listkeeper client command tree.
func NewApp(version string) *cli.App {
	return &cli.App{
		Name:    "listkeeper",
		Usage:   "Command-line client for a listkeeper server",
		Version: version,
		Flags:   []cli.Flag{urlFlag()},
		Commands: []*cli.Command{
			NewListCommand(),
			NewItemCommand(),
			NewConfigCommand(),
		},
	}
}
