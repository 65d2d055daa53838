package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/kutbudev/listkeeper/internal/api"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

// Helper functions shared across commands

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// urlFlag is the global --url flag; commands read it through newClient.
func urlFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "url",
		Usage: "listkeeper API base URL (default from LISTKEEPER_URL or ~/.listkeeper/config.json)",
	}
}

func newClient(c *cli.Context) *api.Client {
	if u := strings.TrimSpace(c.String("url")); u != "" {
		return api.NewClientWithURL(strings.TrimRight(u, "/"))
	}
	return api.NewClient()
}

func out(c *cli.Context) io.Writer {
	if c.App != nil && c.App.Writer != nil {
		return c.App.Writer
	}
	return os.Stdout
}

func ok(c *cli.Context, format string, args ...interface{}) {
	fmt.Fprintln(out(c), successStyle.Render("✔ "+fmt.Sprintf(format, args...)))
}

// reportError prints a styled error line and returns err so Action can pass it up.
func reportError(c *cli.Context, action string, err error) error {
	var w io.Writer = os.Stderr
	if c.App != nil && c.App.ErrWriter != nil {
		w = c.App.ErrWriter
	}
	fmt.Fprintln(w, errorStyle.Render("✖ "+action+": "+describe(err)))
	return err
}

// describe flattens field errors from a 400/409 response into one line.
func describe(err error) string {
	apiErr, isAPI := err.(*api.APIError)
	if !isAPI || len(apiErr.Fields) == 0 {
		return err.Error()
	}
	parts := make([]string, 0, len(apiErr.Fields))
	for _, key := range []string{"_form", "name", "desc", "item"} {
		if msg, found := apiErr.Fields[key]; found {
			parts = append(parts, key+": "+msg)
		}
	}
	if len(parts) == 0 {
		return err.Error()
	}
	return apiErr.Message + " (" + strings.Join(parts, "; ") + ")"
}

func parseID(c *cli.Context, pos int, what string) (uint, error) {
	raw := c.Args().Get(pos)
	if raw == "" {
		return 0, fmt.Errorf("%s ID is required", what)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s ID %q", what, raw)
	}
	return uint(id), nil
}

// confirm asks a yes/no question unless --yes was given.
func confirm(c *cli.Context, message string) (bool, error) {
	if c.Bool("yes") {
		return true, nil
	}
	answer := false
	if err := survey.AskOne(&survey.Confirm{Message: message, Default: false}, &answer); err != nil {
		return false, err
	}
	return answer, nil
}

func yesFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

func truncateString(s string, maxLen int) string {
	if maxLen < 4 {
		maxLen = 4
	}
	if len([]rune(s)) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen-3]) + "..."
}
