package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atomicstack/search-menu/internal/format/table"
)

func newFiltersCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "Show the advanced filter form values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := rt.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()
			values, err := s.AdvancedFilters(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(values) == 0 {
				fmt.Fprintln(out, "No advanced filters.")
				return nil
			}
			keys := values.Keys()
			rows := make([][]string, 0, len(keys))
			for _, key := range keys {
				rows = append(rows, []string{key, values[key]})
			}
			for _, line := range table.WithHeader([]string{"KEY", "VALUE"}, rows, nil) {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
