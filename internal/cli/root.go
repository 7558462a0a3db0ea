// Package cli wires the command line: the root command runs the menu and the
// subcommands manage saved searches and the active query from scripts.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/atomicstack/search-menu/internal/app"
	"github.com/atomicstack/search-menu/internal/config"
	"github.com/atomicstack/search-menu/internal/logging"
	"github.com/atomicstack/search-menu/internal/store"
)

// Options carries the process environment into the command tree. Zero
// fields fall back to the real process.
type Options struct {
	Args    []string
	Environ []string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer

	// Confirm asks a yes/no question before destructive commands.
	Confirm func(title string) (bool, error)

	// RunMenu starts the interactive menu.
	RunMenu func(ctx context.Context, cfg app.Config, out io.Writer) error

	// OnStart runs once the configuration is loaded.
	OnStart func(config.Config)
}

func (o Options) withDefaults() Options {
	if o.Args == nil {
		o.Args = os.Args[1:]
	}
	if o.Environ == nil {
		o.Environ = os.Environ()
	}
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Confirm == nil {
		o.Confirm = huhConfirm(o.Stdin, o.Stderr)
	}
	if o.RunMenu == nil {
		o.RunMenu = app.Run
	}
	return o
}

type runtime struct {
	opts  Options
	flags *config.Flags
	cfg   config.Config
}

// NewRootCommand builds the command tree.
func NewRootCommand(opts Options) *cobra.Command {
	opts = opts.withDefaults()
	rt := &runtime{opts: opts, flags: config.NewFlags(opts.Environ)}
	root := &cobra.Command{
		Use:   "search-menu",
		Short: "Narrow search filter menu",
		Long: `search-menu shows the active search type as a heading and opens a
popover to switch type, apply or manage saved searches, or jump to the
advanced filters. The chosen route is printed on exit.

Examples:
  search-menu
  search-menu --query 'type:trip' --open
  search-menu saved add Travel 'category:Travel'`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: rt.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return rt.opts.RunMenu(cmd.Context(), rt.cfg.App, cmd.OutOrStdout())
		},
	}
	root.SetArgs(opts.Args)
	root.SetIn(opts.Stdin)
	root.SetOut(opts.Stdout)
	root.SetErr(opts.Stderr)
	root.PersistentFlags().AddFlagSet(rt.flags.FlagSet())
	root.AddCommand(
		newSavedCommand(rt),
		newTypesCommand(rt),
		newQueryCommand(rt),
		newFiltersCommand(rt),
	)
	return root
}

func (rt *runtime) setup(_ *cobra.Command, _ []string) error {
	cfg, err := rt.flags.Build(rt.opts.Args)
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	if rt.opts.OnStart != nil {
		rt.opts.OnStart(cfg)
	}
	rt.cfg = cfg
	return nil
}

// openStore opens the configured database; callers close it.
func (rt *runtime) openStore(ctx context.Context) (*store.Store, error) {
	s, err := store.Open(ctx, rt.cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// Execute runs the command tree and returns the process exit code.
func Execute(ctx context.Context, opts Options) int {
	opts = opts.withDefaults()
	if err := NewRootCommand(opts).ExecuteContext(ctx); err != nil {
		logging.Error(err)
		fmt.Fprintf(opts.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
