package commands

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/kutbudev/listkeeper/internal/config"
	"github.com/kutbudev/listkeeper/pkg/app"
	pkgconfig "github.com/kutbudev/listkeeper/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newServer runs a real listkeeper server on a fresh sqlite database.
func newServer(t *testing.T) string {
	t.Helper()
	a, err := app.New(&pkgconfig.Config{
		Database: pkgconfig.DatabaseConfig{
			Driver: pkgconfig.DriverSQLite,
			DSN:    filepath.Join(t.TempDir(), "lists.db"),
		},
		Server: pkgconfig.ServerConfig{Mode: "test", ShutdownTimeout: time.Second},
	})
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	require.NoError(t, a.Migrate(context.Background()))

	router, err := a.Router()
	require.NoError(t, err)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv.URL + "/api/v1"
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	a := NewApp("test")
	a.Writer = &stdout
	a.ErrWriter = &stderr
	err := a.Run(append([]string{"listkeeper"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestListLifecycle(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	base := newServer(t)

	stdout, _, err := run(t, "--url", base, "list", "ls")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No lists yet")

	stdout, _, err = run(t, "--url", base, "list", "create", "-d", "Weekly shop", "Groceries")
	require.NoError(t, err)
	assert.Contains(t, stdout, "List 'Groceries' created (ID 1)")

	_, _, err = run(t, "--url", base, "item", "add", "1", "Buy", "milk")
	require.NoError(t, err)

	stdout, _, err = run(t, "--url", base, "list", "show", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Groceries")
	assert.Contains(t, stdout, "Weekly shop")
	assert.Contains(t, stdout, "1. Buy milk")

	stdout, _, err = run(t, "--url", base, "list", "ls")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Groceries")

	_, _, err = run(t, "--url", base, "list", "update", "--name", "Food", "1")
	require.NoError(t, err)
	stdout, _, err = run(t, "--url", base, "list", "show", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Food")
	assert.Contains(t, stdout, "Weekly shop")

	stdout, _, err = run(t, "--url", base, "item", "delete", "--yes", "1", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Item 1 deleted")

	stdout, _, err = run(t, "--url", base, "list", "delete", "--yes", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "List 'Food' deleted")

	_, stderr, err := run(t, "--url", base, "list", "show", "1")
	require.Error(t, err)
	assert.Contains(t, stderr, "List not found")
}

func TestCreateList_DuplicateName(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	base := newServer(t)

	_, _, err := run(t, "--url", base, "list", "create", "-d", "one", "Chores")
	require.NoError(t, err)

	_, stderr, err := run(t, "--url", base, "list", "create", "-d", "two", "Chores")
	require.Error(t, err)
	assert.Contains(t, stderr, "A list with this name already exists.")
}

func TestArgumentErrors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, _, err := run(t, "--url", "http://127.0.0.1:1", "list", "show")
	assert.EqualError(t, err, "list ID is required")

	_, _, err = run(t, "--url", "http://127.0.0.1:1", "list", "show", "abc")
	assert.EqualError(t, err, `invalid list ID "abc"`)

	_, _, err = run(t, "--url", "http://127.0.0.1:1", "item", "add", "1")
	assert.EqualError(t, err, "item text is required")

	_, _, err = run(t, "--url", "http://127.0.0.1:1", "list", "update", "1")
	assert.Error(t, err)
}

func TestConfigSetURL(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvBaseURL, "")

	_, _, err := run(t, "config", "set-url", "ftp://nope")
	assert.Error(t, err)

	_, _, err = run(t, "config", "set-url", "http://lists.local:9000/api/v1/")
	require.NoError(t, err)
	assert.Equal(t, "http://lists.local:9000/api/v1", config.ResolveBaseURL())

	stdout, _, err := run(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "http://lists.local:9000/api/v1")
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", truncateString("short", 10))
	assert.Equal(t, "abcdefg...", truncateString("abcdefghijklmnop", 10))
	assert.Equal(t, "ç...", truncateString("çççççç", 4))
}
