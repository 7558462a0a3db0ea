package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atomicstack/search-menu/internal/format/table"
	"github.com/atomicstack/search-menu/internal/menu"
	"github.com/atomicstack/search-menu/internal/query"
)

func newTypesCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the configured search types and their routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defs := rt.cfg.App.Types
			entries := menu.TypeEntries(defs)
			rows := make([][]string, 0, len(defs))
			for i, def := range defs {
				rows = append(rows, []string{
					entries[i].Title,
					string(def.Icon),
					query.Parse(def.Query).Canonical(),
					entries[i].Route(rt.cfg.App.WorkspaceID),
				})
			}
			for _, line := range table.WithHeader([]string{"TITLE", "ICON", "QUERY", "ROUTE"}, rows, nil) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}
