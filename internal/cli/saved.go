package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/atomicstack/search-menu/internal/format/table"
	"github.com/atomicstack/search-menu/internal/logging/events"
	"github.com/atomicstack/search-menu/internal/search"
	"github.com/atomicstack/search-menu/internal/store"
)

func newSavedCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saved",
		Short: "Manage saved searches",
	}
	cmd.AddCommand(
		newSavedListCommand(rt),
		newSavedAddCommand(rt),
		newSavedRenameCommand(rt),
		newSavedDeleteCommand(rt),
	)
	return cmd
}

func newSavedListCommand(rt *runtime) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved searches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := rt.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()
			saved, err := s.SavedSearches(cmd.Context())
			if err != nil {
				return fmt.Errorf("list saved searches: %w", err)
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return writeSavedJSON(out, saved)
			}
			if len(saved) == 0 {
				fmt.Fprintln(out, "No saved searches. Use 'search-menu saved add <title> <query>' to add one.")
				return nil
			}
			writeSavedTable(out, saved)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print saved searches as JSON")
	return cmd
}

func writeSavedTable(w io.Writer, saved []search.SavedSearch) {
	rows := make([][]string, 0, len(saved))
	for _, entry := range saved {
		status := string(entry.PendingAction)
		if status == "" {
			status = "-"
		}
		rows = append(rows, []string{strconv.FormatInt(entry.Hash, 10), entry.Title, entry.Query, status})
	}
	lines := table.WithHeader([]string{"HASH", "TITLE", "QUERY", "PENDING"}, rows,
		[]table.Alignment{table.AlignRight})
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "\n%d saved search(es)\n", len(saved))
}

type savedJSON struct {
	Hash    int64  `json:"hash"`
	Title   string `json:"title"`
	Query   string `json:"query"`
	Pending string `json:"pending,omitempty"`
}

func writeSavedJSON(w io.Writer, saved []search.SavedSearch) error {
	out := make([]savedJSON, len(saved))
	for i, entry := range saved {
		out[i] = savedJSON{Hash: entry.Hash, Title: entry.Title, Query: entry.Query, Pending: string(entry.PendingAction)}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func newSavedAddCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title> <query>...",
		Short: "Save a query under a title",
		Long: `Save a query under a title. Equivalent queries share one entry, so
saving again renames it.

Examples:
  search-menu saved add Travel category:Travel
  search-menu saved add "Blue Bottle" 'merchant:"Blue Bottle"'`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(args[0])
			raw := strings.Join(args[1:], " ")
			s, err := rt.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()
			entry, err := s.SaveSearch(cmd.Context(), title, raw)
			if err != nil {
				return err
			}
			events.Saved.Add(entry.Hash, entry.Title)
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %q (%d): %s\n", entry.Title, entry.Hash, entry.Query)
			return nil
		},
	}
}

func newSavedRenameCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <hash> <title>...",
		Short: "Rename a saved search",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := parseHash(args[0])
			if err != nil {
				return err
			}
			title := strings.TrimSpace(strings.Join(args[1:], " "))
			s, err := rt.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.RenameSavedSearch(cmd.Context(), hash, title); err != nil {
				return describeStoreError(hash, err)
			}
			events.Saved.Rename(hash, title)
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %d to %q\n", hash, title)
			return nil
		},
	}
}

func newSavedDeleteCommand(rt *runtime) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <hash>",
		Short: "Delete a saved search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := parseHash(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			s, err := rt.openStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()
			entry, err := s.SavedSearch(ctx, hash)
			if err != nil {
				return describeStoreError(hash, err)
			}
			out := cmd.OutOrStdout()
			if !yes {
				ok, err := rt.opts.Confirm(fmt.Sprintf("Delete saved search %q?", entry.Title))
				if err != nil {
					return fmt.Errorf("confirm delete: %w", err)
				}
				if !ok {
					events.Saved.CancelDelete(hash)
					fmt.Fprintln(out, "Cancelled")
					return nil
				}
			}
			if err := s.DeleteSavedSearch(ctx, hash); err != nil {
				return describeStoreError(hash, err)
			}
			events.Saved.Delete(hash)
			fmt.Fprintf(out, "Deleted %q\n", entry.Title)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking")
	return cmd
}

func parseHash(arg string) (int64, error) {
	hash, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || hash <= 0 {
		return 0, fmt.Errorf("invalid saved search hash %q", arg)
	}
	return hash, nil
}

func describeStoreError(hash int64, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("no saved search with hash %d", hash)
	case errors.Is(err, store.ErrEmptyTitle):
		return fmt.Errorf("saved search title required")
	}
	return err
}
