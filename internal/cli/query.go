package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atomicstack/search-menu/internal/query"
)

func newQueryCommand(rt *runtime) *cobra.Command {
	var clearAll bool
	cmd := &cobra.Command{
		Use:   "query [query]...",
		Short: "Show or set the active query",
		Long: `Without arguments, print the active query. With arguments, store them
as the active query and print its canonical form. --clear removes the
active query and every advanced filter.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := rt.openStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()
			out := cmd.OutOrStdout()
			if clearAll {
				if len(args) > 0 {
					return fmt.Errorf("--clear takes no query")
				}
				if err := s.ClearAllFilters(ctx); err != nil {
					return err
				}
				fmt.Fprintln(out, "Cleared")
				return nil
			}
			if len(args) == 0 {
				active, err := s.ActiveQuery(ctx)
				if err != nil {
					return err
				}
				if active == "" {
					active = "(none)"
				}
				fmt.Fprintln(out, active)
				return nil
			}
			raw := strings.Join(args, " ")
			if err := s.SetActiveQuery(ctx, raw); err != nil {
				return err
			}
			fmt.Fprintln(out, query.Parse(raw).Canonical())
			return nil
		},
	}
	cmd.Flags().BoolVar(&clearAll, "clear", false, "clear the active query and advanced filters")
	return cmd
}
