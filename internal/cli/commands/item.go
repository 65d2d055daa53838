package commands

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

// NewItemCommand creates the 'item' command group.
func NewItemCommand() *cli.Command {
	return &cli.Command{
		Name:    "item",
		Aliases: []string{"i"},
		Usage:   "Add or remove list items",
		Subcommands: []*cli.Command{
			itemAddCmd(),
			itemDeleteCmd(),
		},
	}
}

func itemAddCmd() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Append an item to a list",
		ArgsUsage: "[list-id] [text...]",
		Action: func(c *cli.Context) error {
			listID, err := parseID(c, 0, "list")
			if err != nil {
				return err
			}
			text := strings.Join(c.Args().Slice()[1:], " ")
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("item text is required")
			}

			item, err := newClient(c).AddItem(listID, text)
			if err != nil {
				return reportError(c, "Error adding item", err)
			}

			ok(c, "Added item %d to list %d", item.ID, item.ListID)
			return nil
		},
	}
}

func itemDeleteCmd() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Remove an item from a list",
		ArgsUsage: "[list-id] [item-id]",
		Flags:     []cli.Flag{yesFlag()},
		Action: func(c *cli.Context) error {
			listID, err := parseID(c, 0, "list")
			if err != nil {
				return err
			}
			itemID, err := parseID(c, 1, "item")
			if err != nil {
				return err
			}

			proceed, err := confirm(c, fmt.Sprintf("Delete item %d from list %d?", itemID, listID))
			if err != nil {
				return err
			}
			if !proceed {
				fmt.Fprintln(out(c), "Cancelled.")
				return nil
			}

			if err := newClient(c).DeleteItem(listID, itemID); err != nil {
				return reportError(c, "Error deleting item", err)
			}

			ok(c, "Item %d deleted", itemID)
			return nil
		},
	}
}
