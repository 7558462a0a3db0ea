package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/atomicstack/search-menu/internal/app"
	"github.com/atomicstack/search-menu/internal/backend"
)

// Config is the resolved configuration: the application settings plus the
// values the CLI reports and logs.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Store    Store
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

type Store struct {
	Path      string
	TypesFile string
}

const (
	envWidth        = "SEARCH_MENU_WIDTH"
	envHeight       = "SEARCH_MENU_HEIGHT"
	envShowFooter   = "SEARCH_MENU_FOOTER"
	envVerbose      = "SEARCH_MENU_VERBOSE"
	envTrace        = "SEARCH_MENU_TRACE"
	envLogFile      = "SEARCH_MENU_LOG_FILE"
	envDBPath       = "SEARCH_MENU_DB"
	envTypesFile    = "SEARCH_MENU_TYPES_FILE"
	envWorkspace    = "SEARCH_MENU_WORKSPACE"
	envQuery        = "SEARCH_MENU_QUERY"
	envPollInterval = "SEARCH_MENU_POLL_INTERVAL"
	envOpen         = "SEARCH_MENU_OPEN"
	envSavedHeader  = "SEARCH_MENU_SAVED_HEADER"
)

const dbFileName = "search.db"

// Flags is a flag set bound to environment fallbacks. Build turns the parsed
// values into a Config.
type Flags struct {
	set *pflag.FlagSet
	env map[string]string

	width        *int
	height       *int
	footer       *bool
	trace        *bool
	verbose      *bool
	logFile      *string
	dbPath       *string
	typesFile    *string
	workspace    *string
	query        *string
	pollInterval *time.Duration
	open         *bool
	savedHeader  *string
}

// NewFlags registers every option on a fresh flag set. Defaults come from
// the SEARCH_MENU_* variables in environ.
func NewFlags(environ []string) *Flags {
	env := parseEnv(environ)
	fs := pflag.NewFlagSet("search-menu", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	f := &Flags{set: fs, env: env}
	f.width = fs.Int("width", envValue(env, envWidth, 0, strconv.Atoi), "desired viewport width in cells (0 uses terminal width)")
	f.height = fs.Int("height", envValue(env, envHeight, 0, strconv.Atoi), "desired viewport height in rows (0 uses terminal height)")
	f.footer = fs.Bool("footer", envValue(env, envShowFooter, false, strconv.ParseBool), "enable footer hint row (disabled by default)")
	f.trace = fs.Bool("trace", envValue(env, envTrace, false, strconv.ParseBool), "enable verbose JSON trace logging")
	f.verbose = fs.Bool("verbose", envValue(env, envVerbose, false, strconv.ParseBool), "print success messages for actions")
	f.logFile = fs.String("log-file", envString(env, envLogFile, ""), "path to the log file")
	f.dbPath = fs.String("db", envString(env, envDBPath, ""), "path to the saved search database")
	f.typesFile = fs.String("types-file", envString(env, envTypesFile, ""), "YAML file describing the search types")
	f.workspace = fs.String("workspace", envString(env, envWorkspace, ""), "workspace the search types are scoped to")
	f.query = fs.String("query", envString(env, envQuery, ""), "active query until one is stored")
	f.pollInterval = fs.Duration("poll-interval", envValue(env, envPollInterval, backend.DefaultInterval, time.ParseDuration), "how often saved searches are refreshed")
	f.open = fs.Bool("open", envValue(env, envOpen, false, strconv.ParseBool), "start with the menu open")
	f.savedHeader = fs.String("saved-header", envString(env, envSavedHeader, ""), "section header above saved searches")
	return f
}

// FlagSet exposes the underlying flag set so commands can adopt it.
func (f *Flags) FlagSet() *pflag.FlagSet {
	return f.set
}

// Build validates the parsed flags and assembles the configuration.
func (f *Flags) Build(args []string) (Config, error) {
	if *f.width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *f.width)
	}
	if *f.height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *f.height)
	}
	if *f.pollInterval <= 0 {
		return Config{}, fmt.Errorf("poll-interval must be > 0 (got %s)", *f.pollInterval)
	}
	dbPath := strings.TrimSpace(*f.dbPath)
	if dbPath == "" {
		dbPath = DefaultDBPath(f.env)
	}
	types, err := LoadTypes(*f.typesFile)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Width:        *f.width,
			Height:       *f.height,
			ShowFooter:   *f.footer,
			Verbose:      *f.verbose,
			DBPath:       dbPath,
			WorkspaceID:  strings.TrimSpace(*f.workspace),
			Query:        *f.query,
			PollInterval: *f.pollInterval,
			OpenMenu:     *f.open,
			SavedHeader:  *f.savedHeader,
			Types:        types,
		},
		Logging: Logging{
			FilePath: *f.logFile,
			Trace:    *f.trace,
		},
		Features: Features{
			Verbose: *f.verbose,
		},
		Store: Store{
			Path:      dbPath,
			TypesFile: *f.typesFile,
		},
		Flags: map[string]string{
			"width":        strconv.Itoa(*f.width),
			"height":       strconv.Itoa(*f.height),
			"footer":       strconv.FormatBool(*f.footer),
			"trace":        strconv.FormatBool(*f.trace),
			"verbose":      strconv.FormatBool(*f.verbose),
			"logFile":      *f.logFile,
			"db":           dbPath,
			"typesFile":    *f.typesFile,
			"workspace":    *f.workspace,
			"query":        *f.query,
			"pollInterval": f.pollInterval.String(),
			"open":         strconv.FormatBool(*f.open),
			"savedHeader":  *f.savedHeader,
		},
		Args: append([]string(nil), args...),
	}
	return cfg, nil
}

// LoadArgs parses args against flags whose defaults come from environ.
func LoadArgs(args []string, environ []string) (Config, error) {
	flags := NewFlags(environ)
	if err := flags.set.Parse(args); err != nil {
		return Config{}, err
	}
	return flags.Build(args)
}

// DefaultDBPath places the database under the XDG data directory, falling
// back to ~/.local/share and finally the working directory.
func DefaultDBPath(env map[string]string) string {
	if dir := strings.TrimSpace(env["XDG_DATA_HOME"]); dir != "" {
		return filepath.Join(dir, "search-menu", dbFileName)
	}
	if home := strings.TrimSpace(env["HOME"]); home != "" {
		return filepath.Join(home, ".local", "share", "search-menu", dbFileName)
	}
	return dbFileName
}

// parseEnv splits KEY=VALUE pairs. Entries without '=' are dropped.
func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			values[k] = v
		}
	}
	return values
}

func envString(env map[string]string, key, fallback string) string {
	return envValue(env, key, fallback, func(v string) (string, error) { return v, nil })
}

// envValue parses env[key], returning fallback when the variable is unset,
// blank or malformed.
func envValue[T any](env map[string]string, key string, fallback T, parse func(string) (T, error)) T {
	raw, ok := env[key]
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback
	}
	v, err := parse(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return v
}

// Validate checks the settings Build cannot: a usable database path and the
// search type list.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.Store.Path) == "" {
		return errors.New("database path is required")
	}
	return ValidateTypes(cfg.App.Types)
}
