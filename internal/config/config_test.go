package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/search-menu/internal/backend"
	"github.com/atomicstack/search-menu/internal/menu"
	"github.com/atomicstack/search-menu/internal/search"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"HOME=/home/ana"})
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.App.Width)
	assert.False(t, cfg.App.ShowFooter)
	assert.Equal(t, backend.DefaultInterval, cfg.App.PollInterval)
	assert.Equal(t, "/home/ana/.local/share/search-menu/search.db", cfg.Store.Path)
	assert.Equal(t, cfg.Store.Path, cfg.App.DBPath)
	assert.Equal(t, menu.DefaultTypes(), cfg.App.Types)
	require.NoError(t, Validate(cfg))
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := []string{
		"SEARCH_MENU_WIDTH=70",
		"SEARCH_MENU_FOOTER=true",
		"SEARCH_MENU_WORKSPACE=ws-env",
		"SEARCH_MENU_DB=/tmp/env.db",
		"SEARCH_MENU_POLL_INTERVAL=5s",
	}
	cfg, err := LoadArgs([]string{"--width", "90", "--workspace", "ws-flag", "--query", "type:trip", "--open"}, env)
	require.NoError(t, err)

	assert.Equal(t, 90, cfg.App.Width)
	assert.True(t, cfg.App.ShowFooter)
	assert.Equal(t, "ws-flag", cfg.App.WorkspaceID)
	assert.Equal(t, "/tmp/env.db", cfg.Store.Path)
	assert.Equal(t, 5*time.Second, cfg.App.PollInterval)
	assert.Equal(t, "type:trip", cfg.App.Query)
	assert.True(t, cfg.App.OpenMenu)
	assert.Equal(t, "90", cfg.Flags["width"])
	assert.Equal(t, []string{"--width", "90", "--workspace", "ws-flag", "--query", "type:trip", "--open"}, cfg.Args)
}

func TestLoadArgsRecordsSavedHeaderFlag(t *testing.T) {
	cfg, err := LoadArgs([]string{"--saved-header", "Pinned"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Pinned", cfg.App.SavedHeader)
	assert.Equal(t, "Pinned", cfg.Flags["savedHeader"])
}

func TestLoadArgsIgnoresMalformedEnvironment(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"SEARCH_MENU_HEIGHT=tall", "SEARCH_MENU_TRACE=maybe", "garbage"})
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.App.Height)
	assert.False(t, cfg.Logging.Trace)
}

func TestLoadArgsRejectsInvalidValues(t *testing.T) {
	for _, args := range [][]string{
		{"--width", "-1"},
		{"--height", "-3"},
		{"--poll-interval", "0s"},
		{"--unknown"},
	} {
		_, err := LoadArgs(args, nil)
		assert.Error(t, err, "args %v", args)
	}
}

func TestDefaultDBPathPrefersXDG(t *testing.T) {
	env := map[string]string{"XDG_DATA_HOME": "/data", "HOME": "/home/ana"}
	assert.Equal(t, "/data/search-menu/search.db", DefaultDBPath(env))
	assert.Equal(t, "search.db", DefaultDBPath(nil))
}

func TestLoadTypesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.yaml")
	body := `types:
  - title: Trips
    icon: suitcase
    query: type:trip
  - title: Everything
    query: type:expense status:all
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := LoadArgs([]string{"--types-file", path}, nil)
	require.NoError(t, err)
	assert.Equal(t, []menu.TypeDefinition{
		{Title: "Trips", Icon: search.IconSuitcase, Query: "type:trip"},
		{Title: "Everything", Icon: search.IconReceipt, Query: "type:expense status:all"},
	}, cfg.App.Types)
}

func TestLoadTypesMissingFile(t *testing.T) {
	_, err := LoadTypes(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseTypesValidation(t *testing.T) {
	cases := map[string]string{
		"empty":     "types: []\n",
		"no title":  "types:\n  - query: type:trip\n",
		"no query":  "types:\n  - title: Trips\n",
		"bad icon":  "types:\n  - title: Trips\n    icon: rocket\n    query: type:trip\n",
		"duplicate": "types:\n  - title: Trips\n    query: type:trip\n  - title: trips\n    query: type:trip\n",
		"not yaml":  "types: [\n",
	}
	for name, body := range cases {
		_, err := ParseTypes([]byte(body))
		assert.Error(t, err, name)
	}
}

func TestValidateRequiresDatabasePath(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	require.NoError(t, err)
	cfg.Store.Path = " "
	assert.Error(t, Validate(cfg))
}
