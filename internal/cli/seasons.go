package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Maria-Villafuerte/MCP/internal/colorimetry"
)

func newSeasonsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "seasons",
		Short: "Print the undertone x depth x contrast season table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := colorimetry.SeasonTable()
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), table)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "UNDERTONE\tDEPTH\tCONTRAST\tSEASON")
			for _, e := range table {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Undertone, e.Depth, e.Contrast, e.Name)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}
