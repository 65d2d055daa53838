package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v2"
)

// NewListCommand creates all subcommands for the 'list' command group.
func NewListCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"l"},
		Usage:   "Manage to-do lists",
		Subcommands: []*cli.Command{
			listLsCmd(),
			listShowCmd(),
			listCreateCmd(),
			listUpdateCmd(),
			listDeleteCmd(),
		},
	}
}

// listLsCmd lists all lists.
func listLsCmd() *cli.Command {
	return &cli.Command{
		Name:    "ls",
		Aliases: []string{"all"},
		Usage:   "Show every list with its item count",
		Action: func(c *cli.Context) error {
			lists, err := newClient(c).ListLists()
			if err != nil {
				return reportError(c, "Error listing lists", err)
			}

			if len(lists) == 0 {
				fmt.Fprintln(out(c), "No lists yet. Use 'listkeeper list create' to add one.")
				return nil
			}

			descWidth := terminalWidth() - 40
			w := tabwriter.NewWriter(out(c), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tITEMS\tDESCRIPTION")
			fmt.Fprintln(w, "--\t----\t-----\t-----------")
			for _, l := range lists {
				fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", l.ID, l.Name, l.ItemCount, truncateString(l.Description, descWidth))
			}
			return w.Flush()
		},
	}
}

// listShowCmd prints one list and its items.
func listShowCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show a list and its items",
		ArgsUsage: "[list-id]",
		Action: func(c *cli.Context) error {
			id, err := parseID(c, 0, "list")
			if err != nil {
				return err
			}

			list, err := newClient(c).GetList(id)
			if err != nil {
				return reportError(c, "Error getting list", err)
			}

			w := out(c)
			fmt.Fprintln(w, titleStyle.Render(list.Name))
			fmt.Fprintln(w, mutedStyle.Render(list.Description))
			if len(list.Items) == 0 {
				fmt.Fprintln(w, "  (no items)")
				return nil
			}
			for _, item := range list.Items {
				fmt.Fprintf(w, "  %d. %s\n", item.ID, item.Text)
			}
			return nil
		},
	}
}

// listCreateCmd creates a new list.
func listCreateCmd() *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "Create a new list",
		ArgsUsage: "[name]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "description",
				Aliases:  []string{"d"},
				Usage:    "List description",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("list name is required")
			}

			list, err := newClient(c).CreateList(c.Args().First(), c.String("description"))
			if err != nil {
				return reportError(c, "Error creating list", err)
			}

			ok(c, "List '%s' created (ID %d)", list.Name, list.ID)
			return nil
		},
	}
}

// listUpdateCmd changes a list's name and/or description.
func listUpdateCmd() *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Rename a list or change its description",
		ArgsUsage: "[list-id]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "New list name",
			},
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
				Usage:   "New list description",
			},
		},
		Action: func(c *cli.Context) error {
			id, err := parseID(c, 0, "list")
			if err != nil {
				return err
			}
			if !c.IsSet("name") && !c.IsSet("description") {
				return fmt.Errorf("nothing to update: pass --name and/or --description")
			}

			client := newClient(c)
			current, err := client.GetList(id)
			if err != nil {
				return reportError(c, "Error getting list", err)
			}

			name, desc := current.Name, current.Description
			if c.IsSet("name") {
				name = c.String("name")
			}
			if c.IsSet("description") {
				desc = c.String("description")
			}

			list, err := client.UpdateList(id, name, desc)
			if err != nil {
				return reportError(c, "Error updating list", err)
			}

			ok(c, "List %d updated: %s", list.ID, list.Name)
			return nil
		},
	}
}

// listDeleteCmd deletes a list together with its items.
func listDeleteCmd() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete a list and all of its items",
		ArgsUsage: "[list-id]",
		Flags:     []cli.Flag{yesFlag()},
		Action: func(c *cli.Context) error {
			id, err := parseID(c, 0, "list")
			if err != nil {
				return err
			}

			client := newClient(c)
			list, err := client.GetList(id)
			if err != nil {
				return reportError(c, "Error getting list", err)
			}

			proceed, err := confirm(c, fmt.Sprintf("Delete list '%s' and its %d item(s)?", list.Name, len(list.Items)))
			if err != nil {
				return err
			}
			if !proceed {
				fmt.Fprintln(out(c), "Cancelled.")
				return nil
			}

			if err := client.DeleteList(id); err != nil {
				return reportError(c, "Error deleting list", err)
			}

			ok(c, "List '%s' deleted", list.Name)
			return nil
		},
	}
}
