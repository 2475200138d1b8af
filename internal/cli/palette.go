package cli

import (
	"github.com/spf13/cobra"

	"github.com/Maria-Villafuerte/MCP/internal/colorimetry"
	"github.com/Maria-Villafuerte/MCP/internal/profiles"
	"github.com/Maria-Villafuerte/MCP/internal/server"
)

func newPaletteCmd(a *app) *cobra.Command {
	var (
		attrs colorimetry.Attributes
		req   colorimetry.Request
	)

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Generate a palette and print it as JSON",
		Long: `Generate a palette. With --user the stored profile is used and the palette
is added to that user's history in the configured store. Without --user the
traits given as flags are classified on the fly and nothing is stored.`,
		Example: `  beauty-mcp palette --type makeup --skin media --eyes cafe --hair castaño --vein verde --jewelry oro
  beauty-mcp palette --type clothing --event formal --user ana`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := *a.cfg
			if req.UserID == "" {
				cfg.StoreBackend = profiles.BackendMemory
				req.Overrides = &attrs
			}

			svc, cleanup, err := server.NewService(&cfg, a.log, nil)
			if err != nil {
				return err
			}
			defer cleanup()

			pal, err := svc.GeneratePalette(cmd.Context(), req)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), pal)
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Type, "type", string(colorimetry.Clothing), "palette type: clothing, makeup, accessories")
	f.StringVar(&req.Event, "event", "", "occasion: casual, formal, fiesta, trabajo, cita, deporte, viaje")
	f.StringVar(&req.SeasonOfYear, "season-of-year", "", "primavera, verano, otono, invierno (default: from today's date)")
	f.IntVar(&req.Slots, "slots", 0, "number of colors (default: one per role)")
	f.StringVar(&req.UserID, "user", "", "stored profile to use")
	attributeFlags(cmd, &attrs)
	return cmd
}
